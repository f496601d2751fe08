package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nexmo-community/nexmo-go/auth"
)

// envBindings maps config keys onto the recognized environment variables.
var envBindings = map[string]string{
	"auth.api_key":          "NEXMO_API_KEY",
	"auth.api_secret":       "NEXMO_API_SECRET",
	"auth.signature_secret": "NEXMO_SIGNATURE_SECRET",
	"auth.signature_method": "NEXMO_SIGNATURE_METHOD",
	"auth.private_key":      "NEXMO_PRIVATE_KEY",
	"auth.private_key_path": "NEXMO_PRIVATE_KEY_PATH",
	"auth.application_id":   "NEXMO_APPLICATION_ID",
}

// Load loads the configuration from file and environment. A missing config
// file is fine as long as the environment carries the credentials; an
// explicit configPath that cannot be read is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".nexmo"))
		}
		v.AddConfigPath("/etc/nexmo/")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Credentials builds the credential set from the configuration, reading
// the private key file when only a path is configured.
func (c *Config) Credentials() (*auth.Credentials, error) {
	method, err := auth.ParseSignatureMethod(c.Auth.SignatureMethod)
	if err != nil {
		return nil, err
	}

	creds := &auth.Credentials{
		APIKey:          c.Auth.APIKey,
		APISecret:       c.Auth.APISecret,
		SignatureSecret: c.Auth.SignatureSecret,
		SignatureMethod: method,
		ApplicationID:   c.Auth.ApplicationID,
	}

	switch {
	case c.Auth.PrivateKey != "":
		creds.PrivateKey = []byte(c.Auth.PrivateKey)
	case c.Auth.PrivateKeyPath != "":
		key, err := os.ReadFile(c.Auth.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key: %w", err)
		}
		creds.PrivateKey = key
	}

	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	if cfg.App.Version != "" && cfg.App.Name == "" {
		return fmt.Errorf("app.version set without app.name")
	}

	return nil
}
