package rulekit

// CollectionIndexKey is the reserved root-data key under which a host may
// publish the index of the collection element currently being validated.
// When present it is surfaced to message templates as the CollectionIndex
// placeholder, unless a validator already set one.
const CollectionIndexKey = "__rulekit_collection_index"

// Context is the outer validation context for one validation pass over one
// model instance. It carries the instance, shared root-level data, the
// locale for message resolution, and the engine configuration. A Context is
// never shared between concurrent validation calls.
type Context struct {
	instance any
	rootData map[string]any
	locale   string
	config   *Config
}

// ContextOption configures a Context at creation.
type ContextOption func(*Context)

// WithLocale sets the locale used to resolve localized templates.
func WithLocale(locale string) ContextOption {
	return func(c *Context) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithConfig pins the context to an explicit engine configuration instead
// of the package-level one.
func WithConfig(cfg *Config) ContextOption {
	return func(c *Context) {
		if cfg != nil {
			c.config = cfg
		}
	}
}

// WithRootData seeds the shared root-level data map.
func WithRootData(data map[string]any) ContextOption {
	return func(c *Context) {
		for k, v := range data {
			c.rootData[k] = v
		}
	}
}

// NewContext creates the outer context for validating one model instance.
func NewContext(instance any, options ...ContextOption) *Context {
	c := &Context{
		instance: instance,
		rootData: make(map[string]any),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Instance returns the model instance under validation.
func (c *Context) Instance() any {
	return c.instance
}

// RootData returns the shared root-level data map. The map is mutable so
// rules and hosts can pass values down a pass (for example the reserved
// collection index entry).
func (c *Context) RootData() map[string]any {
	return c.rootData
}

// Locale returns the context locale, falling back to the configured default.
func (c *Context) Locale() string {
	if c.locale != "" {
		return c.locale
	}
	return c.Config().DefaultLocale
}

// Config returns the engine configuration for this context.
func (c *Context) Config() *Config {
	if c.config != nil {
		return c.config
	}
	return defaultConfig
}

// PropertyContext is the invocation context for one (rule, instance,
// property) validation attempt. It materializes the property value at most
// once and lazily: when every executor is rejected by its conditions the
// accessor is never invoked. It is discarded after the pass and never
// shared between concurrent validations.
type PropertyContext struct {
	parent   *Context
	rule     *Rule
	value    any
	accessor func() any
	resolved bool
	fmtr     MessageFormatter
}

// NewPropertyContext creates an invocation context with an eagerly supplied
// value. Rule transforms still apply on first access.
func NewPropertyContext(parent *Context, rule *Rule, value any) *PropertyContext {
	return &PropertyContext{parent: parent, rule: rule, value: value}
}

// NewLazyPropertyContext creates an invocation context whose value is
// produced by the accessor on first use.
func NewLazyPropertyContext(parent *Context, rule *Rule, accessor func() any) *PropertyContext {
	if accessor == nil {
		panic(ErrNilAccessor)
	}
	return &PropertyContext{parent: parent, rule: rule, accessor: accessor}
}

// Parent returns the outer validation context.
func (pc *PropertyContext) Parent() *Context {
	return pc.parent
}

// Rule returns the rule this invocation belongs to.
func (pc *PropertyContext) Rule() *Rule {
	return pc.rule
}

// PropertyName returns the property path of the rule.
func (pc *PropertyContext) PropertyName() string {
	return pc.rule.PropertyName()
}

// DisplayName resolves the human-facing property name. It is recomputed
// from the rule on every call rather than cached: display-name resolution
// may depend on state (such as localization settings) that changes between
// accesses.
func (pc *PropertyContext) DisplayName() string {
	return pc.rule.DisplayName(pc.parent)
}

// Value returns the property value with the rule's transforms applied. The
// deferred accessor runs at most once; the transformed result is cached for
// the remainder of the context's lifetime.
func (pc *PropertyContext) Value() any {
	if !pc.resolved {
		raw := pc.value
		if pc.accessor != nil {
			raw = pc.accessor()
		}
		pc.value = pc.rule.transformValue(raw)
		pc.resolved = true
	}
	return pc.value
}

// Formatter returns the message formatter for this invocation, created on
// first access through the configured factory and reused afterwards.
func (pc *PropertyContext) Formatter() MessageFormatter {
	if pc.fmtr == nil {
		pc.fmtr = pc.parent.Config().FormatterFactory()
	}
	return pc.fmtr
}
