package rulekit

import (
	"net/mail"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Validator names of the built-in checks. They double as the default
// template keys in the message catalog and as the default error codes
// produced by the standard resolver.
const (
	checkNotNil        = "not_nil"
	checkNotEmpty      = "not_empty"
	checkMinLength     = "min_length"
	checkMaxLength     = "max_length"
	checkLengthBetween = "length_between"
	checkMatches       = "matches"
	checkEmail         = "email"
	checkUUID          = "uuid"
	checkGreaterThan   = "greater_than"
	checkLessThan      = "less_than"
	checkEqual         = "equal"
	checkPredicate     = "predicate"
)

// NotNil fails on nil values, including typed nil pointers, slices and maps.
func NotNil() *Executor {
	return NewExecutor(checkNotNil, func(pc *PropertyContext) bool {
		return !isNil(pc.Value())
	})
}

// NotEmpty fails on nil values, whitespace-only strings, zero-length
// slices, maps and arrays, and zero values of other types.
func NotEmpty() *Executor {
	return NewExecutor(checkNotEmpty, func(pc *PropertyContext) bool {
		v := pc.Value()
		if isNil(v) {
			return false
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s) != ""
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
			return rv.Len() > 0
		}
		return !rv.IsZero()
	})
}

// MinLength fails on strings shorter than min bytes.
func MinLength(min int) *Executor {
	return NewExecutor(checkMinLength, func(pc *PropertyContext) bool {
		s, ok := pc.Value().(string)
		return ok && len(s) >= min
	}).SetArgument("MinLength", min)
}

// MaxLength fails on strings longer than max bytes.
func MaxLength(max int) *Executor {
	return NewExecutor(checkMaxLength, func(pc *PropertyContext) bool {
		s, ok := pc.Value().(string)
		return ok && len(s) <= max
	}).SetArgument("MaxLength", max)
}

// LengthBetween fails on strings outside [min, max] bytes.
func LengthBetween(min, max int) *Executor {
	return NewExecutor(checkLengthBetween, func(pc *PropertyContext) bool {
		s, ok := pc.Value().(string)
		return ok && len(s) >= min && len(s) <= max
	}).SetArgument("MinLength", min).SetArgument("MaxLength", max)
}

// Matches fails on strings not matching the pattern. An invalid pattern is
// a construction defect and panics immediately.
func Matches(pattern string) *Executor {
	re := regexp.MustCompile(pattern)
	return NewExecutor(checkMatches, func(pc *PropertyContext) bool {
		s, ok := pc.Value().(string)
		return ok && re.MatchString(s)
	})
}

// Email fails on strings that do not parse as a single bare RFC 5322
// address.
func Email() *Executor {
	return NewExecutor(checkEmail, func(pc *PropertyContext) bool {
		s, ok := pc.Value().(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		addr, err := mail.ParseAddress(s)
		if err != nil {
			return false
		}
		// Reject display-name forms; only the bare address is acceptable input.
		return addr.Address == s
	})
}

// UUID fails on strings that are not canonical UUIDs.
func UUID() *Executor {
	return NewExecutor(checkUUID, func(pc *PropertyContext) bool {
		s, ok := pc.Value().(string)
		if !ok || len(s) != 36 {
			return false
		}
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// GreaterThan fails on numeric values not strictly above the threshold.
func GreaterThan(threshold float64) *Executor {
	return NewExecutor(checkGreaterThan, func(pc *PropertyContext) bool {
		n, ok := toFloat(pc.Value())
		return ok && n > threshold
	}).SetArgument("ComparisonValue", threshold)
}

// LessThan fails on numeric values not strictly below the threshold.
func LessThan(threshold float64) *Executor {
	return NewExecutor(checkLessThan, func(pc *PropertyContext) bool {
		n, ok := toFloat(pc.Value())
		return ok && n < threshold
	}).SetArgument("ComparisonValue", threshold)
}

// Equal fails on values not deeply equal to the expected one.
func Equal(expected any) *Executor {
	return NewExecutor(checkEqual, func(pc *PropertyContext) bool {
		return reflect.DeepEqual(pc.Value(), expected)
	}).SetArgument("ComparisonValue", expected)
}

// Builder sugar for the built-in checks.

func (b *Builder[T]) NotNil() *Builder[T]   { return b.SetValidator(NotNil()) }
func (b *Builder[T]) NotEmpty() *Builder[T] { return b.SetValidator(NotEmpty()) }

func (b *Builder[T]) MinLength(min int) *Builder[T] { return b.SetValidator(MinLength(min)) }
func (b *Builder[T]) MaxLength(max int) *Builder[T] { return b.SetValidator(MaxLength(max)) }

func (b *Builder[T]) LengthBetween(min, max int) *Builder[T] {
	return b.SetValidator(LengthBetween(min, max))
}

func (b *Builder[T]) Matches(pattern string) *Builder[T] { return b.SetValidator(Matches(pattern)) }
func (b *Builder[T]) Email() *Builder[T]                 { return b.SetValidator(Email()) }
func (b *Builder[T]) UUID() *Builder[T]                  { return b.SetValidator(UUID()) }

func (b *Builder[T]) GreaterThan(threshold float64) *Builder[T] {
	return b.SetValidator(GreaterThan(threshold))
}

func (b *Builder[T]) LessThan(threshold float64) *Builder[T] {
	return b.SetValidator(LessThan(threshold))
}

func (b *Builder[T]) Equal(expected any) *Builder[T] { return b.SetValidator(Equal(expected)) }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
