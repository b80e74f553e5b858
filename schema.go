package rulekit

import "context"

// DefaultRuleSet selects rules that carry no rule-set tag.
const DefaultRuleSet = "default"

// Schema owns the ordered rule collection for one model type and runs it
// over instances. Declare rules once at startup; a Schema is safe for
// concurrent Validate calls as long as it is no longer being mutated.
type Schema[T any] struct {
	rules     []*Rule
	capturing bool
	captured  []*Rule
}

// NewSchema creates an empty schema for the model type T.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{}
}

// Rules returns the primary rule collection in declaration order.
func (s *Schema[T]) Rules() []*Rule {
	return s.rules
}

// addRule places a rule into the primary collection, or into the capture
// list while a DependentRules scope is open.
func (s *Schema[T]) addRule(r *Rule) {
	if s.capturing {
		s.captured = append(s.captured, r)
		return
	}
	s.rules = append(s.rules, r)
}

// capture redirects rule declarations into a side list while action runs.
// The previous sink is restored on every exit path, so a panicking action
// cannot leave the schema collecting into the wrong place.
func (s *Schema[T]) capture(action func()) []*Rule {
	prevCapturing, prevCaptured := s.capturing, s.captured
	s.capturing, s.captured = true, nil
	defer func() {
		s.capturing, s.captured = prevCapturing, prevCaptured
	}()

	action()
	return s.captured
}

// RuleFor declares a rule for a property of T and returns its fluent
// builder. The accessor extracts the raw property value from an instance.
func RuleFor[T any](s *Schema[T], propertyName string, accessor func(T) any) *Builder[T] {
	if accessor == nil {
		panic(ErrNilAccessor)
	}
	rule := NewRule(propertyName, func(instance any) any {
		return accessor(instance.(T))
	})
	s.addRule(rule)
	return &Builder[T]{schema: s, rule: rule}
}

// ValidateOption configures one validation pass.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	ruleSets       []string
	contextOptions []ContextOption
}

// InRuleSets limits the pass to rules tagged with any of the given set
// names. The DefaultRuleSet name selects untagged rules. Without this
// option only untagged rules run.
func InRuleSets(names ...string) ValidateOption {
	return func(o *validateOptions) {
		o.ruleSets = append(o.ruleSets, names...)
	}
}

// WithContextOptions forwards options to the Context built for the pass.
func WithContextOptions(options ...ContextOption) ValidateOption {
	return func(o *validateOptions) {
		o.contextOptions = append(o.contextOptions, options...)
	}
}

// Validate runs the schema synchronously. See ValidateContext.
func (s *Schema[T]) Validate(instance T, options ...ValidateOption) (*Result, error) {
	return s.ValidateContext(context.Background(), instance, options...)
}

// ValidateContext runs every selected rule in declaration order against a
// fresh outer context and returns the ordered failures. The error return
// carries defects from user-supplied delegates, never validation outcomes.
func (s *Schema[T]) ValidateContext(ctx context.Context, instance T, options ...ValidateOption) (*Result, error) {
	var o validateOptions
	for _, option := range options {
		option(&o)
	}

	vctx := NewContext(instance, o.contextOptions...)

	var failures []Failure
	for _, rule := range s.rules {
		if !ruleSelected(rule, o.ruleSets) {
			continue
		}
		fs, err := rule.ValidateContext(ctx, vctx)
		if err != nil {
			return nil, err
		}
		failures = append(failures, fs...)
	}
	return NewResult(failures), nil
}

// ruleSelected decides whether a rule participates in a pass: with no sets
// requested only untagged rules run; otherwise a rule runs when one of its
// tags was requested, and untagged rules run when DefaultRuleSet was.
func ruleSelected(rule *Rule, requested []string) bool {
	tags := rule.RuleSets()
	if len(requested) == 0 {
		return len(tags) == 0
	}
	for _, name := range requested {
		if name == DefaultRuleSet && len(tags) == 0 {
			return true
		}
		for _, tag := range tags {
			if tag == name {
				return true
			}
		}
	}
	return false
}
