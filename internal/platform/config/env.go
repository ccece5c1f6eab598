// Package config loads command configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable the commands read.
const EnvPrefix = "PASSWORD_SHEET_"

// ParseEnv loads configuration from environment variables into target.
// Struct tags name variables without EnvPrefix.
func ParseEnv(target any) error {
	return parse(target, env.Options{Prefix: EnvPrefix})
}

// ParseEnvFrom is ParseEnv over an explicit environment instead of the
// process environment.
func ParseEnvFrom(target any, environment map[string]string) error {
	return parse(target, env.Options{Prefix: EnvPrefix, Environment: environment})
}

func parse(target any, opts env.Options) error {
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
