package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	ModeHTTP    = "http"
	ModeConsole = "console"

	// HumanNone lets the bot play both sides.
	HumanNone = "none"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string  `yaml:"mode" env:"MODE" env-default:"http"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Console  Console `yaml:"console"`
}

type Console struct {
	// HumanMark is "X", "O" or "none".
	HumanMark string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path, applying env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.Mode {
	case ModeHTTP, ModeConsole:
	default:
		return fmt.Errorf("%w: unknown mode %q", apperror.ErrInvalidConfig, that.Mode)
	}

	switch that.Console.HumanMark {
	case "X", "O", HumanNone:
	default:
		return fmt.Errorf("%w: unknown human mark %q", apperror.ErrInvalidConfig, that.Console.HumanMark)
	}

	return nil
}
