package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

type testSettings struct {
	Locale   string `env:"RULEKIT_TEST_LOCALE" envDefault:"en"`
	Severity string `env:"RULEKIT_TEST_SEVERITY" envDefault:"error"`
	Limit    int    `env:"RULEKIT_TEST_LIMIT" envDefault:"10"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is unset", func(t *testing.T) {
		var s testSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, "en", s.Locale)
		assert.Equal(t, "error", s.Severity)
		assert.Equal(t, 10, s.Limit)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("RULEKIT_TEST_LOCALE", "de")
		t.Setenv("RULEKIT_TEST_LIMIT", "25")

		var s testSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, "de", s.Locale)
		assert.Equal(t, 25, s.Limit)
	})

	t.Run("rejects nil destination", func(t *testing.T) {
		err := config.Load[testSettings](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		t.Setenv("RULEKIT_TEST_LIMIT", "not-a-number")

		var s testSettings
		err := config.Load(&s)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("RULEKIT_TEST_LIMIT", "boom")

		assert.Panics(t, func() {
			var s testSettings
			config.MustLoad(&s)
		})
	})

	t.Run("loads without panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var s testSettings
			config.MustLoad(&s)
		})
	})
}
