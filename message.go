package rulekit

// MessageBuilder lets a rule override the failure message of every
// validator attached to it without the validators knowing about the
// override. The returned string is used as the final message text.
type MessageBuilder func(*MessageContext) string

// MessageContext is handed to a rule-level MessageBuilder when a validator
// failed. It exposes the failing executor, the property metadata, and the
// message the executor would have produced on its own.
type MessageContext struct {
	executor  *Executor
	pctx      *PropertyContext
	defaultFn func() string
}

func newMessageContext(executor *Executor, pctx *PropertyContext, defaultFn func() string) *MessageContext {
	return &MessageContext{executor: executor, pctx: pctx, defaultFn: defaultFn}
}

// Executor returns the validator that produced the failure.
func (m *MessageContext) Executor() *Executor {
	return m.executor
}

// PropertyName returns the property path of the failing rule.
func (m *MessageContext) PropertyName() string {
	return m.pctx.PropertyName()
}

// DisplayName returns the resolved human-facing property name.
func (m *MessageContext) DisplayName() string {
	return m.pctx.DisplayName()
}

// AttemptedValue returns the value the failing check ran against.
func (m *MessageContext) AttemptedValue() any {
	return m.pctx.Value()
}

// Formatter returns the invocation's message formatter with the standard
// placeholders already appended, so overrides can render their own
// templates against it.
func (m *MessageContext) Formatter() MessageFormatter {
	return m.pctx.Formatter()
}

// DefaultMessage resolves and renders the message the executor would have
// produced without the rule-level override.
func (m *MessageContext) DefaultMessage() string {
	return m.defaultFn()
}
