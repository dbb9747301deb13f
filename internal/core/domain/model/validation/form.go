package validation

import (
	"fmt"
	"strings"

	"shippix/internal/pkg/errs"
)

// Field is one input of a form. Required fields must be non-blank for the form
// to be complete; the blank message itself is expressed as a NotBlank rule.
type Field struct {
	Name     string
	Label    string
	Required bool
	Rules    []Rule
}

// Check returns the message of the first rule that does not hold, or "".
func (f Field) Check(values Values) string {
	value := values.Get(f.Name)
	for _, rule := range f.Rules {
		if !rule.Holds(value, values) {
			return rule.Message
		}
	}
	return ""
}

// Form is a named, ordered set of fields.
type Form struct {
	Name   string
	Fields []Field
}

// Field returns the field with the given name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// CheckField evaluates a single field, the "on blur" check. Unknown fields never
// report an error.
func (f Form) CheckField(name string, values Values) string {
	field, ok := f.Field(name)
	if !ok {
		return ""
	}
	return field.Check(values)
}

// Check evaluates every field, the "on submit" check.
func (f Form) Check(values Values) Errors {
	out := make(Errors)
	for _, field := range f.Fields {
		if msg := field.Check(values); msg != "" {
			out[field.Name] = msg
		}
	}
	return out
}

// Validate returns an *InvalidFormError when any field fails.
func (f Form) Validate(values Values) error {
	if fields := f.Check(values); !fields.Empty() {
		return &InvalidFormError{Form: f.Name, Fields: fields}
	}
	return nil
}

// IsComplete reports whether every required field is filled in and no field
// fails its rules. The result depends on values only, so toggling a field back
// and forth toggles the result with it.
func (f Form) IsComplete(values Values) bool {
	for _, field := range f.Fields {
		if field.Required && strings.TrimSpace(values.Get(field.Name)) == "" {
			return false
		}
	}
	return f.Check(values).Empty()
}

// InvalidFormError carries the per-field messages of a rejected form.
type InvalidFormError struct {
	Form   string
	Fields Errors
}

func (e *InvalidFormError) Error() string {
	return fmt.Sprintf("%s: form %s has invalid fields: %s",
		errs.ErrValueIsInvalid, e.Form, strings.Join(e.Fields.Fields(), ", "))
}

func (e *InvalidFormError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
