package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override file settings,
// e.g. TEXTBOOK_RSA_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "TEXTBOOK_RSA"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	KeyGen   KeyGenSettings   `mapstructure:"keygen"`
}

// Validate checks the server settings and every nested settings struct
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.KeyGen.Validate()
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")

	v.SetDefault("keygen.key_size", DefaultKeySize)
	v.SetDefault("keygen.exponent", DefaultExponent)
	v.SetDefault("keygen.max_attempts", 0)
}

// InitializeRestConfig loads the REST server settings from the YAML file at path,
// applies TEXTBOOK_RSA_* environment overrides and validates the result.
// An empty path skips the file and uses defaults plus environment.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	setRestDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
