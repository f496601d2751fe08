package config

// Config represents the complete configuration structure
type Config struct {
	Auth    AuthConfig    `mapstructure:"auth"`
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// AuthConfig holds the credential set. Every field can also come from its
// NEXMO_* environment variable.
type AuthConfig struct {
	APIKey          string `mapstructure:"api_key"`
	APISecret       string `mapstructure:"api_secret"`
	SignatureSecret string `mapstructure:"signature_secret"`
	SignatureMethod string `mapstructure:"signature_method"`
	ApplicationID   string `mapstructure:"application_id"`
	PrivateKey      string `mapstructure:"private_key"`
	PrivateKeyPath  string `mapstructure:"private_key_path"`
}

// AppConfig identifies the calling application in the user agent.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
