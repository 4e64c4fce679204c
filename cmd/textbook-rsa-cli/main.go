// Package main is the entry point for the textbook-rsa-cli application.
// It registers the key, cipher and prime sub-commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/textbook-rsa/cmd/textbook-rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "textbook-rsa-cli",
		Short: "Textbook RSA command-line tool",
		Long: `textbook-rsa-cli generates unpadded RSA key pairs, encrypts and decrypts
short UTF-8 messages as hexadecimal ciphertexts, and exposes the underlying
prime generator and primality test.

Textbook RSA is deterministic and malleable. Use it for teaching only.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := commands.InitPrimeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize prime commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
