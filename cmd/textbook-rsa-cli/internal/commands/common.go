package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readInput returns the value of the inline flag, or the content of --input-file
// when the inline flag is empty. Exactly one of the two must be set.
func readInput(cmd *cobra.Command, inlineFlag string) (string, error) {
	inline, err := cmd.Flags().GetString(inlineFlag)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", inlineFlag, err)
	}
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}

	inlineSet := cmd.Flags().Changed(inlineFlag)
	switch {
	case inlineSet && inputFile != "":
		return "", fmt.Errorf("--%s and --input-file are mutually exclusive", inlineFlag)
	case inlineSet:
		return inline, nil
	case inputFile != "":
		data, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	default:
		return "", errors.New("either --" + inlineFlag + " or --input-file is required")
	}
}

// writeOutput writes result to --output-file when set and to stdout otherwise.
// It returns the path written to, or an empty string for stdout.
func writeOutput(cmd *cobra.Command, result string) (string, error) {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", fmt.Errorf("invalid output-file flag: %w", err)
	}

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return "", nil
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(result), 0600); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return outputFile, nil
}

// logged reports a failing command through the logger before cobra prints it
// and the process exits non-zero.
func logged(log logger.Logger, run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			log.Errorf("%s failed: %v", cmd.Name(), err)
		}
		return err
	}
}
