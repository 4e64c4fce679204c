package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling textbook RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair and persists both halves as PEM files in --key-dir
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	exponent, err := cmd.Flags().GetInt64("exponent")
	if err != nil {
		return fmt.Errorf("invalid exponent flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	privateKey, publicKey, err := commandHandler.rsaProcessor.GenerateKeys(keySize, exponent)
	if err != nil {
		return err
	}

	uniqueID := uuid.New().String()

	privateKeyFilePath := filepath.Join(keyDir, uniqueID+"-private-key.pem")
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		return err
	}

	publicKeyFilePath := filepath.Join(keyDir, uniqueID+"-public-key.pem")
	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		return err
	}

	commandHandler.logger.Infof("Key pair %s written to %s", uniqueID, keyDir)
	fmt.Fprintln(cmd.OutOrStdout(), publicKeyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), privateKeyFilePath)
	return nil
}

// EncryptCmd encrypts --plaintext or the content of --input-file with a public key file
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return fmt.Errorf("invalid public-key flag: %w", err)
	}

	plaintext, err := readInput(cmd, "plaintext")
	if err != nil {
		return err
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	ciphertext, err := commandHandler.rsaProcessor.Encrypt(plaintext, publicKey)
	if err != nil {
		return err
	}

	outputFile, err := writeOutput(cmd, ciphertext)
	if err != nil {
		return err
	}
	if outputFile != "" {
		commandHandler.logger.Info("Encrypted data path ", outputFile)
	}
	return nil
}

// DecryptCmd decrypts --ciphertext or the content of --input-file with a private key file
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return fmt.Errorf("invalid private-key flag: %w", err)
	}

	ciphertext, err := readInput(cmd, "ciphertext")
	if err != nil {
		return err
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}

	plaintext, err := commandHandler.rsaProcessor.Decrypt(strings.TrimSpace(ciphertext), privateKey)
	if err != nil {
		return err
	}

	outputFile, err := writeOutput(cmd, plaintext)
	if err != nil {
		return err
	}
	if outputFile != "" {
		commandHandler.logger.Info("Decrypted data path ", outputFile)
	}
	return nil
}

// InitRSACommands registers key generation and cipher commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}
	registerRSACommands(rootCmd, handler)
	return nil
}

func registerRSACommands(rootCmd *cobra.Command, handler *RSACommandHandler) {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key pair",
		RunE:  logged(handler.logger, handler.GenerateKeysCmd),
	}
	generateKeysCmd.Flags().IntP("key-size", "", config.DefaultKeySize, "Approximate modulus size in bits")
	generateKeysCmd.Flags().Int64P("exponent", "", config.DefaultExponent, "Public exponent (an odd prime)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the key files")
	_ = generateKeysCmd.MarkFlagRequired("key-dir")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a textbook RSA public key",
		RunE:  logged(handler.logger, handler.EncryptCmd),
	}
	encryptCmd.Flags().StringP("public-key", "", "", "Path to the public key file")
	encryptCmd.Flags().StringP("plaintext", "", "", "Message to encrypt")
	encryptCmd.Flags().StringP("input-file", "", "", "Path to a file holding the message")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to the ciphertext output file (stdout if empty)")
	_ = encryptCmd.MarkFlagRequired("public-key")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a hexadecimal ciphertext with a textbook RSA private key",
		RunE:  logged(handler.logger, handler.DecryptCmd),
	}
	decryptCmd.Flags().StringP("private-key", "", "", "Path to the private key file")
	decryptCmd.Flags().StringP("ciphertext", "", "", "Hexadecimal ciphertext")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to a file holding the ciphertext")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to the plaintext output file (stdout if empty)")
	_ = decryptCmd.MarkFlagRequired("private-key")
	rootCmd.AddCommand(decryptCmd)
}
