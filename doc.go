// Package rulekit is a rule-composition and execution engine for
// declarative, per-property validation of structured objects.
//
// Callers declare one or more validators against a named property of a
// model through a fluent builder, optionally gate each validator with
// boolean conditions, optionally transform the property value before
// validation, and optionally nest rules that only run when the outer
// rule's chain passed. At validation time each applicable validator runs
// against a lazily materialized property value and produces zero or one
// structured Failure with a fully resolved, localizable, templated
// message.
//
// # Usage
//
//	type User struct {
//	    Email string
//	    Name  string
//	}
//
//	schema := rulekit.NewSchema[User]()
//	rulekit.RuleFor(schema, "Email", func(u User) any { return u.Email }).
//	    NotEmpty().WithErrorCode("ERR_EMAIL_REQUIRED").
//	    Email()
//	rulekit.RuleFor(schema, "Name", func(u User) any { return u.Name }).
//	    Transform(func(v any) any { return strings.TrimSpace(v.(string)) }).
//	    MinLength(2)
//
//	result, err := schema.Validate(User{Email: ""})
//	if err != nil {
//	    // a user-supplied delegate failed; this is a defect, not a
//	    // validation outcome
//	}
//	for _, f := range result.Failures() {
//	    fmt.Println(f.PropertyName, f.ErrorCode, f.Message)
//	}
//
// # Execution model
//
// Validators on a rule execute in declaration order and independently: a
// failing validator does not stop the ones after it. Conditions attached
// to a validator evaluate before the property value is materialized, most
// recently applied first, short-circuiting on the first rejection; when
// every validator of a rule is rejected by its conditions the property
// accessor is never invoked. Dependent rules declared inside
// DependentRules run only when the owning rule produced no failures.
//
// Every operation exists in a synchronous form and a context-aware form
// (Validate / ValidateContext). Both share one implementation; a validator
// carrying a context-aware condition or predicate evaluates it on either
// entry point, and cancellation is cooperative: context-aware delegates
// must observe ctx themselves.
//
// # Messages
//
// Failure messages resolve in order: the validator's message factory, its
// static template, a localized template from the configured TemplateSource
// (keyed by explicit error code, then validator name), then a built-in
// default. Placeholders use the %{Name} form and are substituted by a
// per-invocation MessageFormatter; see pkg/formatter and pkg/lang.
//
// # Concurrency
//
// Schemas, rules and executors are built once and are safe for concurrent
// validation afterwards; contexts and formatters are created per call and
// never shared. The package-level configuration follows a
// single-writer-before-first-use discipline: Configure it at startup.
package rulekit
