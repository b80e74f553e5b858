package rulekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit"
	"github.com/dmitrymomot/rulekit/pkg/lang"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := rulekit.NewConfig()

		require.NotNil(t, cfg.FormatterFactory)
		assert.NotNil(t, cfg.FormatterFactory())
		assert.Equal(t, lang.Default(), cfg.Templates)
		assert.Equal(t, lang.FallbackLocale, cfg.DefaultLocale)
		assert.Equal(t, rulekit.SeverityError, cfg.DefaultSeverity)

		e := rulekit.NotEmpty()
		assert.Equal(t, "not_empty", cfg.ErrorCodeResolver(e))
	})

	t.Run("options override defaults", func(t *testing.T) {
		templates := stubTemplates{"k": "v"}
		cfg := rulekit.NewConfig(
			rulekit.WithTemplates(templates),
			rulekit.WithDefaultLocale("de"),
			rulekit.WithDefaultSeverity(rulekit.SeverityWarning),
			rulekit.WithErrorCodeResolver(func(*rulekit.Executor) string { return "X" }),
		)

		assert.Equal(t, rulekit.TemplateSource(templates), cfg.Templates)
		assert.Equal(t, "de", cfg.DefaultLocale)
		assert.Equal(t, rulekit.SeverityWarning, cfg.DefaultSeverity)
		assert.Equal(t, "X", cfg.ErrorCodeResolver(rulekit.NotEmpty()))
	})

	t.Run("nil option values are ignored", func(t *testing.T) {
		cfg := rulekit.NewConfig(
			rulekit.WithTemplates(nil),
			rulekit.WithFormatterFactory(nil),
			rulekit.WithErrorCodeResolver(nil),
			rulekit.WithDefaultLocale(""),
		)

		assert.NotNil(t, cfg.Templates)
		assert.NotNil(t, cfg.FormatterFactory)
		assert.NotNil(t, cfg.ErrorCodeResolver)
		assert.Equal(t, lang.FallbackLocale, cfg.DefaultLocale)
	})
}

func TestWithEnvDefaults(t *testing.T) {
	t.Run("reads locale and severity from environment", func(t *testing.T) {
		t.Setenv("RULEKIT_DEFAULT_LOCALE", "de")
		t.Setenv("RULEKIT_DEFAULT_SEVERITY", "warning")

		cfg := rulekit.NewConfig(rulekit.WithEnvDefaults())
		assert.Equal(t, "de", cfg.DefaultLocale)
		assert.Equal(t, rulekit.SeverityWarning, cfg.DefaultSeverity)
	})

	t.Run("falls back to built-in defaults", func(t *testing.T) {
		cfg := rulekit.NewConfig(rulekit.WithEnvDefaults())
		assert.Equal(t, "en", cfg.DefaultLocale)
		assert.Equal(t, rulekit.SeverityError, cfg.DefaultSeverity)
	})
}

func TestConfigure(t *testing.T) {
	t.Run("mutates the package-level config", func(t *testing.T) {
		original := rulekit.DefaultConfig().DefaultLocale
		defer rulekit.Configure(rulekit.WithDefaultLocale(original))

		rulekit.Configure(rulekit.WithDefaultLocale("uk"))
		assert.Equal(t, "uk", rulekit.DefaultConfig().DefaultLocale)
	})
}
