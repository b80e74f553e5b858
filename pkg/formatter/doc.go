// Package formatter implements the named-placeholder message formatter used
// to render validation failure messages.
//
// A Formatter collects placeholder values for a single validation attempt
// and substitutes them into a message template. Placeholders use the
// "%{Name}" form:
//
//	f := formatter.New()
//	f.AppendPropertyName("Email")
//	f.AppendArgument("MinLength", 8)
//	msg := f.BuildMessage("%{PropertyName} must be at least %{MinLength} characters long.")
//	// "Email must be at least 8 characters long."
//
// Unknown placeholders are left in place so that downstream consumers can
// re-render messages with additional values.
//
// A Formatter is not safe for concurrent use; the validation engine creates
// one per invocation context.
package formatter
