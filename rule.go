package rulekit

import "context"

// Rule is the full validation configuration for one property of a model:
// an ordered executor chain, optional value transforms, optional rule-set
// tags, dependent rule groups that run only when the chain passed, and an
// optional rule-wide message override.
//
// Build a Rule once and reuse it across validation calls; it holds no
// per-call state. Do not mutate it after first use in a concurrent
// environment.
type Rule struct {
	propertyName   string
	displayName    string
	displayNameFn  func(*Context) string
	accessor       func(instance any) any
	executors      []*Executor
	dependent      []*Rule
	transforms     []func(any) any
	ruleSets       []string
	messageBuilder MessageBuilder
}

// NewRule declares a rule for a property. The accessor extracts the raw
// property value from a model instance; a nil accessor is a construction
// defect.
func NewRule(propertyName string, accessor func(instance any) any) *Rule {
	if accessor == nil {
		panic(ErrNilAccessor)
	}
	return &Rule{propertyName: propertyName, accessor: accessor}
}

// PropertyName returns the property path this rule validates.
func (r *Rule) PropertyName() string {
	return r.propertyName
}

// DisplayName resolves the human-facing property name against the given
// context: the display-name function wins, then the static override, then
// the property name itself.
func (r *Rule) DisplayName(vctx *Context) string {
	if r.displayNameFn != nil {
		return r.displayNameFn(vctx)
	}
	if r.displayName != "" {
		return r.displayName
	}
	return r.propertyName
}

// SetDisplayName sets a static human-facing name for failure messages.
func (r *Rule) SetDisplayName(name string) {
	r.displayName = name
}

// SetDisplayNameFunc sets a display-name resolver evaluated per request.
func (r *Rule) SetDisplayNameFunc(fn func(*Context) string) {
	r.displayNameFn = fn
}

// AddExecutor appends a validator executor to the chain. A nil executor is
// a construction-time usage error and panics immediately.
func (r *Rule) AddExecutor(e *Executor) {
	if e == nil {
		panic(ErrNilExecutor)
	}
	r.executors = append(r.executors, e)
}

// Executors returns the validator chain in execution order.
func (r *Rule) Executors() []*Executor {
	return r.executors
}

// AddTransform appends a value transform. Transforms compose in declaration
// order and run once, when the invocation context materializes the value,
// so every executor observes the fully transformed value.
func (r *Rule) AddTransform(fn func(any) any) {
	if fn != nil {
		r.transforms = append(r.transforms, fn)
	}
}

func (r *Rule) transformValue(v any) any {
	for _, fn := range r.transforms {
		v = fn(v)
	}
	return v
}

// RuleSets returns the rule-set tags of this rule.
func (r *Rule) RuleSets() []string {
	return r.ruleSets
}

// AddRuleSets tags the rule with rule-set names for selective execution.
func (r *Rule) AddRuleSets(names ...string) {
	r.ruleSets = append(r.ruleSets, names...)
}

// SetMessageBuilder installs a rule-wide message override superseding every
// executor's own message on this rule.
func (r *Rule) SetMessageBuilder(mb MessageBuilder) {
	r.messageBuilder = mb
}

// DependentRules returns the rules that run only when this rule's chain
// produced no failures.
func (r *Rule) DependentRules() []*Rule {
	return r.dependent
}

// AddDependentRules appends rules to the dependent groups.
func (r *Rule) AddDependentRules(rules ...*Rule) {
	r.dependent = append(r.dependent, rules...)
}

// Validate runs the rule synchronously against the outer context. See
// ValidateContext.
func (r *Rule) Validate(vctx *Context) ([]Failure, error) {
	return r.ValidateContext(context.Background(), vctx)
}

// ValidateContext runs every executor in declaration order against a fresh
// invocation context and collects their failures; one failing executor does
// not stop the ones after it. Dependent rules run only when the whole chain
// passed. The error return carries defects from user-supplied delegates.
func (r *Rule) ValidateContext(ctx context.Context, vctx *Context) ([]Failure, error) {
	pctx := NewLazyPropertyContext(vctx, r, func() any {
		return r.accessor(vctx.Instance())
	})

	var failures []Failure
	for _, e := range r.executors {
		fs, err := e.ValidateContext(ctx, pctx)
		if err != nil {
			return nil, err
		}
		failures = append(failures, fs...)
	}

	if len(failures) > 0 {
		return failures, nil
	}

	for _, dep := range r.dependent {
		fs, err := dep.ValidateContext(ctx, vctx)
		if err != nil {
			return nil, err
		}
		failures = append(failures, fs...)
	}
	return failures, nil
}
