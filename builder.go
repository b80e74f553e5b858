package rulekit

import (
	"context"
	"slices"
)

// Builder is the fluent composition API for one rule. Every call that
// attaches a validator retargets the builder at that executor, so the
// configuration methods that follow (When, WithMessage, WithErrorCode, ...)
// apply to the most recently attached validator without re-specifying it.
type Builder[T any] struct {
	schema  *Schema[T]
	rule    *Rule
	current *Executor
}

// Rule returns the rule under construction.
func (b *Builder[T]) Rule() *Rule {
	return b.rule
}

// SetValidator appends a validator executor to the rule and narrows the
// builder to it. A nil executor panics immediately; silently continuing
// with no validator attached would hide the defect until validation time.
func (b *Builder[T]) SetValidator(e *Executor) *Builder[T] {
	b.rule.AddExecutor(e) // panics on nil
	b.current = e
	return b
}

// Must attaches a predicate validator over the (transformed) property value.
func (b *Builder[T]) Must(predicate func(value any) bool) *Builder[T] {
	return b.SetValidator(NewExecutor(checkPredicate, func(pc *PropertyContext) bool {
		return predicate(pc.Value())
	}))
}

// MustContext attaches a context-aware predicate validator. The predicate
// must observe ctx itself; errors it returns propagate to the caller.
func (b *Builder[T]) MustContext(predicate func(ctx context.Context, value any) (bool, error)) *Builder[T] {
	return b.SetValidator(NewExecutorContext(checkPredicate, func(ctx context.Context, pc *PropertyContext) (bool, error) {
		return predicate(ctx, pc.Value())
	}))
}

// Configure invokes fn with the rule and the currently targeted executor
// (nil when no validator has been attached yet) for arbitrary in-place
// adjustment.
func (b *Builder[T]) Configure(fn func(*Rule, *Executor)) *Builder[T] {
	if fn != nil {
		fn(b.rule, b.current)
	}
	return b
}

// Transform installs a value transform on the rule. Transforms compose in
// declaration order and are applied before any validator observes the
// value; failures report the transformed value as the attempted value.
func (b *Builder[T]) Transform(fn func(any) any) *Builder[T] {
	b.rule.AddTransform(fn)
	return b
}

// DependentRules opens a capture scope: rules declared inside action are
// diverted from the schema's primary collection into this rule's dependent
// groups, which only execute when this rule's chain passed. Captured rules
// without rule-set tags inherit this rule's tags, but only when this rule
// has any. The capture is torn down even when action panics.
func (b *Builder[T]) DependentRules(action func()) *Builder[T] {
	if action == nil {
		panic(ErrNilAction)
	}

	captured := b.schema.capture(action)

	if outer := b.rule.RuleSets(); len(outer) > 0 {
		for _, r := range captured {
			if len(r.RuleSets()) == 0 {
				r.AddRuleSets(slices.Clone(outer)...)
			}
		}
	}
	b.rule.AddDependentRules(captured...)
	return b
}

// When gates the current validator with a synchronous condition. Repeated
// calls AND-combine; the condition applied last is evaluated first and
// short-circuits the rest.
func (b *Builder[T]) When(condition Condition) *Builder[T] {
	b.mustCurrent().ApplyCondition(condition)
	return b
}

// WhenContext gates the current validator with a context-aware condition,
// forcing it onto the context-aware execution path.
func (b *Builder[T]) WhenContext(condition ConditionContext) *Builder[T] {
	b.mustCurrent().ApplyAsyncCondition(condition)
	return b
}

// WithMessage sets a static message template on the current validator.
func (b *Builder[T]) WithMessage(template string) *Builder[T] {
	b.mustCurrent().SetMessage(template)
	return b
}

// WithMessageFunc sets a message factory on the current validator.
func (b *Builder[T]) WithMessageFunc(fn func(*PropertyContext) string) *Builder[T] {
	b.mustCurrent().SetMessageFunc(fn)
	return b
}

// WithErrorCode sets an explicit error code on the current validator.
func (b *Builder[T]) WithErrorCode(code string) *Builder[T] {
	b.mustCurrent().SetErrorCode(code)
	return b
}

// WithSeverity attaches a fixed severity to failures of the current
// validator.
func (b *Builder[T]) WithSeverity(severity Severity) *Builder[T] {
	b.mustCurrent().SetSeverityFunc(func(*Context) Severity { return severity })
	return b
}

// WithSeverityFunc attaches a severity provider to the current validator.
func (b *Builder[T]) WithSeverityFunc(fn func(*Context) Severity) *Builder[T] {
	b.mustCurrent().SetSeverityFunc(fn)
	return b
}

// WithState attaches a custom-state provider to the current validator.
func (b *Builder[T]) WithState(fn func(*Context) any) *Builder[T] {
	b.mustCurrent().SetStateFunc(fn)
	return b
}

// WithName sets a static display name for the rule's failure messages.
func (b *Builder[T]) WithName(displayName string) *Builder[T] {
	b.rule.SetDisplayName(displayName)
	return b
}

// WithNameFunc sets a display-name resolver evaluated on each request.
func (b *Builder[T]) WithNameFunc(fn func(*Context) string) *Builder[T] {
	b.rule.SetDisplayNameFunc(fn)
	return b
}

// InRuleSets tags the rule for selective execution.
func (b *Builder[T]) InRuleSets(names ...string) *Builder[T] {
	b.rule.AddRuleSets(names...)
	return b
}

// WithMessageBuilder installs a rule-wide message override superseding
// every validator's own message on this rule.
func (b *Builder[T]) WithMessageBuilder(mb MessageBuilder) *Builder[T] {
	b.rule.SetMessageBuilder(mb)
	return b
}

// mustCurrent guards executor-scoped calls made before any validator was
// attached; that is builder misuse and fails loudly.
func (b *Builder[T]) mustCurrent() *Executor {
	if b.current == nil {
		panic(ErrNoExecutor)
	}
	return b.current
}
