package validation

import (
	"maps"
	"slices"
)

// Values holds the raw strings submitted for a form, keyed by field name.
type Values map[string]string

// Get returns the raw value of a field, or "" when the field was not submitted.
func (v Values) Get(name string) string {
	return v[name]
}

// With returns a copy of v with name set to value.
func (v Values) With(name, value string) Values {
	out := make(Values, len(v)+1)
	maps.Copy(out, v)
	out[name] = value
	return out
}

// Errors maps a field name to the message of its first failing rule. Fields
// without an error are absent.
type Errors map[string]string

// Clear returns a copy of e without the error of the given field. Forms call it
// when a field is edited so its message disappears until the next check.
func (e Errors) Clear(field string) Errors {
	out := make(Errors, len(e))
	for name, msg := range e {
		if name != field {
			out[name] = msg
		}
	}
	return out
}

// Fields returns the names of the fields with errors, sorted.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// Empty reports whether no field has an error.
func (e Errors) Empty() bool {
	return len(e) == 0
}
