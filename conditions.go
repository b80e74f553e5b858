package rulekit

import "context"

// Condition gates a validator against the outer validation context.
type Condition func(*Context) bool

// ConditionContext is the context-aware variant of Condition. The predicate
// must observe ctx itself; the engine does not enforce timeouts on its
// behalf.
type ConditionContext func(ctx context.Context, vctx *Context) (bool, error)

// combineConditions chains two conditions with short-circuiting AND
// semantics. The condition applied last runs first; the earlier one is
// never evaluated when the newer one rejects.
func combineConditions(next, prev Condition) Condition {
	return func(vctx *Context) bool {
		return next(vctx) && prev(vctx)
	}
}

// combineConditionsContext mirrors combineConditions for context-aware
// conditions, preserving the same evaluation order and short-circuit.
func combineConditionsContext(next, prev ConditionContext) ConditionContext {
	return func(ctx context.Context, vctx *Context) (bool, error) {
		ok, err := next(ctx, vctx)
		if err != nil || !ok {
			return ok, err
		}
		return prev(ctx, vctx)
	}
}
