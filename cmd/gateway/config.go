package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wellness_gauntlet/internal/mlclient"
	"wellness_gauntlet/internal/server"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "gateway"
	configFormat = "yaml"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	MLService MLServiceConfig `mapstructure:"mlService"`
	Debug     bool            `mapstructure:"debug"`
	LogLevel  string          `mapstructure:"logLevel"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type MLServiceConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (c ServerConfig) Server() server.Config {
	return server.Config{
		Host:            c.Host,
		Port:            c.Port,
		ShutdownTimeout: c.ShutdownTimeout,
	}
}

func (c MLServiceConfig) Client() mlclient.Config {
	return mlclient.Config{
		BaseURL: c.URL,
		Timeout: c.Timeout,
	}
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(configPath)
	v.SetConfigType(configFormat)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5001")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("mlService.url", "http://localhost:5002")
	v.SetDefault("mlService.timeout", "30s")
	v.SetDefault("debug", true)
	v.SetDefault("logLevel", "info")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindings := map[string][]string{
		"server.port":   {"APP_SERVER_PORT", "PORT"},
		"debug":         {"APP_DEBUG", "DEBUG"},
		"mlService.url": {"APP_MLSERVICE_URL", "ML_SERVICE_URL"},
	}
	for key, names := range bindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, err
		}
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
