package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Uploads UploadsConfig `mapstructure:"uploads"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	StaticDir string `mapstructure:"static_dir"`
}

type DBConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type AuthConfig struct {
	JWTSecret    string `mapstructure:"jwt_secret"`
	TokenTTLDays int    `mapstructure:"token_ttl_days"`
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

// SMTPConfig configures the contact-form relay. An empty Addr disables
// delivery; messages are still persisted.
type SMTPConfig struct {
	Addr string `mapstructure:"addr"`
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// Every key has a default, so a missing config file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.giftlab/")
	v.AddConfigPath("/etc/giftlab/")

	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.static_dir", "./client/build")
	v.SetDefault("db.path", "shop.db")
	v.SetDefault("db.maxOpenConns", 1)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_days", 7)
	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("smtp.addr", "")
	v.SetDefault("smtp.from", "")
	v.SetDefault("smtp.to", "")

	// Enable environment variable override with GIFTLAB_ prefix
	v.SetEnvPrefix("GIFTLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if one is present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
