package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultDatabaseFile = "urls.json"
	DefaultBaseAddress  = "http://short.url"
	DefaultCodeLength   = 6
)

// ConfigType carries the settings shared by every command. It is
// passed explicitly down to the operations, never kept as a global.
type ConfigType struct {
	DatabaseFile string `env:"DATABASE_FILE"`
	BaseAddress  string `env:"BASE_URL"`
	CodeLength   int    `env:"SHORT_CODE_LENGTH"`
}

// NewConfig returns the defaults overridden by environment variables.
// Per-command flags are applied on top by the command layer.
func NewConfig() *ConfigType {
	config := ConfigType{
		DatabaseFile: DefaultDatabaseFile,
		BaseAddress:  DefaultBaseAddress,
		CodeLength:   DefaultCodeLength,
	}

	if err := env.Parse(&config); err != nil {
		fmt.Printf("Error loading configuration from env: %v\n", err)
	}

	return &config
}
