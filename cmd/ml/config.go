package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wellness_gauntlet/internal/server"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	Debug    bool         `mapstructure:"debug"`
	LogLevel string       `mapstructure:"logLevel"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

func (c ServerConfig) Server() server.Config {
	return server.Config{
		Host:            c.Host,
		Port:            c.Port,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

// LoadConfig reads config.yaml when present and lets the environment
// override it. FLASK_PORT and FLASK_DEBUG are accepted next to the APP_
// prefixed names. Bare PORT belongs to the gateway and is ignored here.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(configPath)
	v.SetConfigType(configFormat)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5002")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("debug", true)
	v.SetDefault("logLevel", "info")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "APP_SERVER_PORT", "FLASK_PORT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("debug", "APP_DEBUG", "FLASK_DEBUG"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
