package rulekit

import "errors"

// Construction-time usage errors. These surface as panics from the fluent
// API: misusing the builder is a programming defect, not a validation
// outcome.
var (
	// ErrNilExecutor is raised when a rule receives a nil validator executor.
	ErrNilExecutor = errors.New("rulekit: validator executor is nil")

	// ErrNilPredicate is raised when an executor without a validity predicate
	// is asked to validate.
	ErrNilPredicate = errors.New("rulekit: executor has no validity predicate")

	// ErrNoExecutor is raised when an executor-scoped builder call happens
	// before any validator was attached to the rule.
	ErrNoExecutor = errors.New("rulekit: no validator attached to configure")

	// ErrNilAction is raised when DependentRules receives a nil callback.
	ErrNilAction = errors.New("rulekit: dependent rules action is nil")

	// ErrNilAccessor is raised when a rule is declared without a property
	// accessor.
	ErrNilAccessor = errors.New("rulekit: property accessor is nil")
)
