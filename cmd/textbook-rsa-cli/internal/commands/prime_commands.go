package commands

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/numtheory"

	"github.com/spf13/cobra"
)

// PrimeCommandHandler exposes the prime generator, the primality test and the sieve.
type PrimeCommandHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewPrimeCommandHandler initializes a new PrimeCommandHandler.
func NewPrimeCommandHandler() (*PrimeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &PrimeCommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GeneratePrimeCmd prints a random prime of --bits bits in decimal
func (commandHandler *PrimeCommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) error {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		return fmt.Errorf("invalid bits flag: %w", err)
	}
	exponent, err := cmd.Flags().GetInt64("exponent")
	if err != nil {
		return fmt.Errorf("invalid exponent flag: %w", err)
	}

	prime, err := commandHandler.rsaProcessor.GeneratePrime(bits, exponent)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime.String())
	return nil
}

// IsPrimeCmd prints true when --candidate is probably prime and false otherwise
func (commandHandler *PrimeCommandHandler) IsPrimeCmd(cmd *cobra.Command, _ []string) error {
	raw, err := cmd.Flags().GetString("candidate")
	if err != nil {
		return fmt.Errorf("invalid candidate flag: %w", err)
	}

	candidate, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return fmt.Errorf("candidate %q is not a decimal integer", raw)
	}

	prime, err := commandHandler.rsaProcessor.IsPrime(candidate)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(prime))
	return nil
}

// SmallPrimesCmd prints every prime up to --bound separated by spaces
func (commandHandler *PrimeCommandHandler) SmallPrimesCmd(cmd *cobra.Command, _ []string) error {
	bound, err := cmd.Flags().GetInt("bound")
	if err != nil {
		return fmt.Errorf("invalid bound flag: %w", err)
	}
	if bound < 0 {
		return fmt.Errorf("bound must not be negative, got %d", bound)
	}

	primes := numtheory.SmallPrimes(bound)
	formatted := make([]string, len(primes))
	for i, p := range primes {
		formatted[i] = strconv.Itoa(p)
	}

	commandHandler.logger.Debugf("Sieved %d primes up to %d", len(primes), bound)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(formatted, " "))
	return nil
}

// InitPrimeCommands registers prime-related commands
func InitPrimeCommands(rootCmd *cobra.Command) error {
	handler, err := NewPrimeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create prime command handler: %w", err)
	}
	registerPrimeCommands(rootCmd, handler)
	return nil
}

func registerPrimeCommands(rootCmd *cobra.Command, handler *PrimeCommandHandler) {
	var generatePrimeCmd = &cobra.Command{
		Use:   "generate-prime",
		Short: "Generate a random prime with an exact bit length",
		RunE:  logged(handler.logger, handler.GeneratePrimeCmd),
	}
	generatePrimeCmd.Flags().IntP("bits", "", 0, "Bit length of the prime")
	generatePrimeCmd.Flags().Int64P("exponent", "", 0, "Reject primes p with p mod exponent == 1 (0 disables)")
	_ = generatePrimeCmd.MarkFlagRequired("bits")
	rootCmd.AddCommand(generatePrimeCmd)

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Test a decimal integer for primality",
		RunE:  logged(handler.logger, handler.IsPrimeCmd),
	}
	isPrimeCmd.Flags().StringP("candidate", "", "", "Decimal integer to test")
	_ = isPrimeCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(isPrimeCmd)

	var smallPrimesCmd = &cobra.Command{
		Use:   "small-primes",
		Short: "List every prime up to a bound",
		RunE:  logged(handler.logger, handler.SmallPrimesCmd),
	}
	smallPrimesCmd.Flags().IntP("bound", "", 100, "Inclusive upper bound")
	rootCmd.AddCommand(smallPrimesCmd)
}
