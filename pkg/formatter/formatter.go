package formatter

import (
	"fmt"
	"maps"
	"regexp"
)

// Well-known placeholder names populated by the validation engine.
const (
	// PropertyName holds the resolved display name of the property under
	// validation.
	PropertyName = "PropertyName"

	// PropertyValue holds the attempted (post-transform) value.
	PropertyValue = "PropertyValue"

	// CollectionIndex holds the index of the current element when a rule
	// runs against an item of a collection.
	CollectionIndex = "CollectionIndex"
)

// Regex to find named placeholders in the form %{Name}
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Formatter accumulates named placeholder values and substitutes them into
// message templates. The zero value is not usable; create instances with New.
type Formatter struct {
	values map[string]any
}

// New creates an empty Formatter.
func New() *Formatter {
	return &Formatter{values: make(map[string]any)}
}

// AppendPropertyName sets the PropertyName placeholder.
func (f *Formatter) AppendPropertyName(name string) {
	f.values[PropertyName] = name
}

// AppendPropertyValue sets the PropertyValue placeholder.
func (f *Formatter) AppendPropertyValue(value any) {
	f.values[PropertyValue] = value
}

// AppendArgument sets an arbitrary named placeholder, overwriting any
// previous value under the same name.
func (f *Formatter) AppendArgument(name string, value any) {
	f.values[name] = value
}

// Has reports whether a placeholder with the given name has been set.
func (f *Formatter) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// PlaceholderValues returns a copy of the accumulated placeholder map.
func (f *Formatter) PlaceholderValues() map[string]any {
	out := make(map[string]any, len(f.values))
	maps.Copy(out, f.values)
	return out
}

// BuildMessage substitutes the accumulated placeholders into the template.
// Placeholders without a value are kept verbatim.
func (f *Formatter) BuildMessage(template string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := f.values[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
