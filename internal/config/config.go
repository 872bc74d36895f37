package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Variant    string `yaml:"variant" env:"VARIANT" env-default:"classic"`
	OutputPath string `yaml:"output-path" env:"OUTPUT_PATH" env-default:"graph.js"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Serve      bool   `yaml:"serve" env:"SERVE" env-default:"false"`
	Redis      Redis  `yaml:"redis" env-prefix:"REDIS_"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"PORT" env-default:"6379"`
}

// Load - reads path when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// GetRedisAddr - "host:port", or an empty string when the host or the port is missing.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
