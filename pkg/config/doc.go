// Package config loads engine settings from environment variables into
// tagged structs.
//
// It wraps caarlos0/env with a one-time .env file load via godotenv so the
// same code path works in development and production:
//
//	type Settings struct {
//	    Locale string `env:"RULEKIT_DEFAULT_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure and suits settings the process cannot start
// without.
package config
