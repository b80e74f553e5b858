package rulekit

import (
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/formatter"
	"github.com/dmitrymomot/rulekit/pkg/lang"
)

// MessageFormatter is the per-invocation placeholder engine producing final
// failure text. One instance is created per invocation context through the
// configured factory.
type MessageFormatter interface {
	AppendPropertyName(name string)
	AppendPropertyValue(value any)
	AppendArgument(name string, value any)
	Has(name string) bool
	PlaceholderValues() map[string]any
	BuildMessage(template string) string
}

// TemplateSource resolves localized message templates. Keys are tried in
// order (explicit error code first, validator default key after it); the
// second return value reports whether a template was found.
type TemplateSource interface {
	Template(locale string, keys ...string) (string, bool)
}

// Config carries the process-wide engine options. Initialize it once at
// startup; reconfiguring while validations are in flight is not safe.
type Config struct {
	// FormatterFactory constructs the formatter for one invocation context.
	FormatterFactory func() MessageFormatter

	// Templates is the localized template source for default messages.
	Templates TemplateSource

	// ErrorCodeResolver maps an executor to its default error code, used
	// when no explicit code is set.
	ErrorCodeResolver func(*Executor) string

	// DefaultLocale is used when a validation context carries no locale.
	DefaultLocale string

	// DefaultSeverity is attached to failures whose executor has no
	// severity provider.
	DefaultSeverity Severity
}

// Option configures engine settings.
type Option func(*Config)

// WithFormatterFactory sets the message formatter factory.
func WithFormatterFactory(factory func() MessageFormatter) Option {
	return func(c *Config) {
		if factory != nil {
			c.FormatterFactory = factory
		}
	}
}

// WithTemplates sets the localized template source.
func WithTemplates(source TemplateSource) Option {
	return func(c *Config) {
		if source != nil {
			c.Templates = source
		}
	}
}

// WithErrorCodeResolver sets the default error code resolver.
func WithErrorCodeResolver(resolver func(*Executor) string) Option {
	return func(c *Config) {
		if resolver != nil {
			c.ErrorCodeResolver = resolver
		}
	}
}

// WithDefaultLocale sets the locale used when a context carries none.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) {
		if locale != "" {
			c.DefaultLocale = locale
		}
	}
}

// WithDefaultSeverity sets the severity attached to failures whose
// executor has no severity provider.
func WithDefaultSeverity(severity Severity) Option {
	return func(c *Config) {
		c.DefaultSeverity = severity
	}
}

// envSettings are the engine defaults readable from the environment.
type envSettings struct {
	Locale   string `env:"RULEKIT_DEFAULT_LOCALE" envDefault:"en"`
	Severity string `env:"RULEKIT_DEFAULT_SEVERITY" envDefault:"error"`
}

// WithEnvDefaults loads DefaultLocale and DefaultSeverity from the
// RULEKIT_DEFAULT_LOCALE and RULEKIT_DEFAULT_SEVERITY environment
// variables. Panics when the environment cannot be parsed, so broken
// deployments fail at startup rather than mid-validation.
func WithEnvDefaults() Option {
	return func(c *Config) {
		var s envSettings
		config.MustLoad(&s)
		c.DefaultLocale = s.Locale
		c.DefaultSeverity = ParseSeverity(s.Severity)
	}
}

// NewConfig builds a Config with the built-in defaults, then applies the
// options: the package formatter, the embedded English template catalog,
// and error codes equal to the executor name.
func NewConfig(options ...Option) *Config {
	c := &Config{
		FormatterFactory:  func() MessageFormatter { return formatter.New() },
		Templates:         lang.Default(),
		ErrorCodeResolver: func(e *Executor) string { return e.Name() },
		DefaultLocale:     lang.FallbackLocale,
		DefaultSeverity:   SeverityError,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// The package-level config follows a single-writer-before-first-use
// discipline: Configure it during startup, before concurrent validation
// begins.
var defaultConfig = NewConfig()

// Configure applies options to the package-level Config shared by contexts
// created without an explicit one.
func Configure(options ...Option) {
	for _, option := range options {
		option(defaultConfig)
	}
}

// DefaultConfig returns the package-level Config.
func DefaultConfig() *Config {
	return defaultConfig
}
