package rulekit

import (
	"context"

	"github.com/dmitrymomot/rulekit/pkg/formatter"
)

// defaultFailureTemplate is the last-resort message when neither the
// executor nor the template source provides one.
const defaultFailureTemplate = "%{PropertyName} is not valid."

// Predicate reports whether the value carried by the invocation context is
// valid.
type Predicate func(*PropertyContext) bool

// PredicateContext is the context-aware predicate variant. The check must
// observe ctx itself; errors it returns propagate to the caller uncaught.
type PredicateContext func(ctx context.Context, pctx *PropertyContext) (bool, error)

// Executor is the unit performing one specific check and producing at most
// one Failure per invocation. Its delegates are set once at composition
// time and read-only afterwards, so a configured Executor is safe to reuse
// across concurrent validation calls.
type Executor struct {
	name         string
	predicate    Predicate
	predicateCtx PredicateContext

	condition    Condition
	conditionCtx ConditionContext

	messageTemplate string
	messageFn       func(*PropertyContext) string
	errorCode       string
	severityFn      func(*Context) Severity
	stateFn         func(*Context) any
	args            map[string]any
}

// NewExecutor creates an executor around a synchronous validity predicate.
// The name identifies the validator to the error-code resolver and the
// template source.
func NewExecutor(name string, predicate Predicate) *Executor {
	return &Executor{name: name, predicate: predicate}
}

// NewExecutorContext creates an executor around a context-aware validity
// predicate. Such executors always take the context-aware execution path.
func NewExecutorContext(name string, predicate PredicateContext) *Executor {
	return &Executor{name: name, predicateCtx: predicate}
}

// Name returns the validator identity used for default error codes and
// template lookups.
func (e *Executor) Name() string {
	return e.name
}

// HasCondition reports whether a synchronous condition is attached.
func (e *Executor) HasCondition() bool {
	return e.condition != nil
}

// HasAsyncCondition reports whether a context-aware condition is attached.
func (e *Executor) HasAsyncCondition() bool {
	return e.conditionCtx != nil
}

// ApplyCondition attaches a synchronous condition. When one is already
// attached the two are AND-combined with the new condition evaluated first;
// the earlier condition is skipped entirely when the new one rejects.
func (e *Executor) ApplyCondition(condition Condition) *Executor {
	if condition == nil {
		return e
	}
	if e.condition != nil {
		e.condition = combineConditions(condition, e.condition)
	} else {
		e.condition = condition
	}
	return e
}

// ApplyAsyncCondition attaches a context-aware condition with the same
// combination and short-circuit rules as ApplyCondition.
func (e *Executor) ApplyAsyncCondition(condition ConditionContext) *Executor {
	if condition == nil {
		return e
	}
	if e.conditionCtx != nil {
		e.conditionCtx = combineConditionsContext(condition, e.conditionCtx)
	} else {
		e.conditionCtx = condition
	}
	return e
}

// ShouldValidateAsync reports whether this executor must run on the
// context-aware path, which is the case whenever a context-aware condition
// or predicate is attached.
func (e *Executor) ShouldValidateAsync() bool {
	return e.conditionCtx != nil || e.predicateCtx != nil
}

// SetMessage sets a static message template for failures of this executor.
func (e *Executor) SetMessage(template string) *Executor {
	e.messageTemplate = template
	return e
}

// SetMessageFunc sets a message factory invoked with the invocation context
// when the executor fails. It takes precedence over the static template.
func (e *Executor) SetMessageFunc(fn func(*PropertyContext) string) *Executor {
	e.messageFn = fn
	return e
}

// SetErrorCode sets an explicit error code, superseding the process-wide
// resolver for this executor.
func (e *Executor) SetErrorCode(code string) *Executor {
	e.errorCode = code
	return e
}

// ErrorCode returns the explicit error code, empty when unset.
func (e *Executor) ErrorCode() string {
	return e.errorCode
}

// SetSeverityFunc sets the severity provider for failures of this executor.
func (e *Executor) SetSeverityFunc(fn func(*Context) Severity) *Executor {
	e.severityFn = fn
	return e
}

// SetStateFunc sets the custom-state provider for failures of this executor.
func (e *Executor) SetStateFunc(fn func(*Context) any) *Executor {
	e.stateFn = fn
	return e
}

// SetArgument registers a named placeholder value appended to the message
// formatter when this executor fails. Successful checks never touch the
// formatter.
func (e *Executor) SetArgument(name string, value any) *Executor {
	if e.args == nil {
		e.args = make(map[string]any)
	}
	e.args[name] = value
	return e
}

// Validate runs the executor synchronously. It is a convenience wrapper
// over ValidateContext with a background context; executors carrying
// context-aware delegates still evaluate them on that path, so both entry
// points behave identically.
func (e *Executor) Validate(pctx *PropertyContext) ([]Failure, error) {
	return e.ValidateContext(context.Background(), pctx)
}

// ValidateContext evaluates the executor for one invocation: conditions
// first (most recently applied first, short-circuiting), then the validity
// predicate against the lazily materialized value, then failure
// construction. "Invalid" is returned as data; the error return carries
// only defects from user-supplied delegates, which propagate uncaught.
func (e *Executor) ValidateContext(ctx context.Context, pctx *PropertyContext) ([]Failure, error) {
	parent := pctx.Parent()

	if e.condition != nil && !e.condition(parent) {
		return nil, nil
	}
	if e.conditionCtx != nil {
		ok, err := e.conditionCtx(ctx, parent)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}

	var (
		ok  bool
		err error
	)
	switch {
	case e.predicateCtx != nil:
		ok, err = e.predicateCtx(ctx, pctx)
	case e.predicate != nil:
		ok = e.predicate(pctx)
	default:
		panic(ErrNilPredicate)
	}
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, nil
	}

	return []Failure{e.buildFailure(pctx)}, nil
}

// buildFailure prepares the formatter and assembles the Failure for a
// rejected value.
func (e *Executor) buildFailure(pctx *PropertyContext) Failure {
	parent := pctx.Parent()
	cfg := parent.Config()
	f := pctx.Formatter()

	displayName := pctx.DisplayName()
	f.AppendPropertyName(displayName)
	f.AppendPropertyValue(pctx.Value())
	for name, value := range e.args {
		f.AppendArgument(name, value)
	}
	if idx, ok := parent.RootData()[CollectionIndexKey]; ok && !f.Has(formatter.CollectionIndex) {
		f.AppendArgument(formatter.CollectionIndex, idx)
	}

	template := e.resolveTemplate(pctx, cfg)
	buildDefault := func() string { return f.BuildMessage(template) }

	var message string
	if mb := pctx.Rule().messageBuilder; mb != nil {
		message = mb(newMessageContext(e, pctx, buildDefault))
	} else {
		message = buildDefault()
	}

	code := e.errorCode
	if code == "" {
		code = cfg.ErrorCodeResolver(e)
	}

	severity := cfg.DefaultSeverity
	if e.severityFn != nil {
		severity = e.severityFn(parent)
	}

	var state any
	if e.stateFn != nil {
		state = e.stateFn(parent)
	}

	return Failure{
		PropertyName:      pctx.PropertyName(),
		DisplayName:       displayName,
		AttemptedValue:    pctx.Value(),
		Message:           message,
		ErrorCode:         code,
		Severity:          severity,
		CustomState:       state,
		PlaceholderValues: f.PlaceholderValues(),
	}
}

// resolveTemplate picks the message template: factory function, then static
// template, then the localized template source keyed by the explicit error
// code and the validator name, then the built-in default.
func (e *Executor) resolveTemplate(pctx *PropertyContext, cfg *Config) string {
	if e.messageFn != nil {
		return e.messageFn(pctx)
	}
	if e.messageTemplate != "" {
		return e.messageTemplate
	}
	if cfg.Templates != nil {
		if tmpl, ok := cfg.Templates.Template(pctx.Parent().Locale(), e.errorCode, e.name); ok {
			return tmpl
		}
	}
	return defaultFailureTemplate
}
