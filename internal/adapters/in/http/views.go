package http

import (
	"shippix/internal/core/domain/model/validation"

	"github.com/labstack/echo/v4"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type formField struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Error    string
	Required bool
	Options  []option
}

// formView is a form as rendered: its fields with their current values and
// messages. Complete drives the enabled state of the submit button.
type formView struct {
	Name     string
	Action   string
	Submit   string
	Fields   []formField
	Complete bool
	Resume   string
	Error    string
}

var fieldTypes = map[string]string{
	"emailAddress":        "email",
	"email":               "email",
	"phoneNumber":         "tel",
	"password":            "password",
	"confirmPassword":     "password",
	"pickupDate":          "date",
	"pickupTime":          "time",
	"notesToDriver":       "textarea",
	"itemsDescription":    "textarea",
	"specialInstructions": "textarea",
	"reason":              "select",
	"selectedAddress":     "radio",
}

var fieldOptions = map[string][]option{
	"reason": {
		{Value: validation.ReasonNotAvailable, Label: "I won't be available"},
		{Value: validation.ReasonChangeTime, Label: "Need different time"},
		{Value: validation.ReasonChangeAddress, Label: "Change delivery address"},
		{Value: validation.ReasonEmergency, Label: "Emergency situation"},
		{Value: validation.ReasonOther, Label: "Other"},
	},
	"selectedAddress": {
		{Value: validation.AddressHome, Label: "Home"},
		{Value: validation.AddressOffice, Label: "Office"},
		{Value: validation.AddressNew, Label: "New address"},
	},
}

func newFormView(form validation.Form, values validation.Values, errors validation.Errors) formView {
	view := formView{
		Name:     form.Name,
		Fields:   make([]formField, 0, len(form.Fields)),
		Complete: form.IsComplete(values),
	}

	for _, f := range form.Fields {
		kind, ok := fieldTypes[f.Name]
		if !ok {
			kind = "text"
		}

		field := formField{
			Name:     f.Name,
			Label:    f.Label,
			Type:     kind,
			Value:    values.Get(f.Name),
			Error:    errors[f.Name],
			Required: f.Required,
		}
		if kind == "password" {
			field.Value = ""
		}
		for _, o := range fieldOptions[f.Name] {
			o.Selected = o.Value == field.Value
			field.Options = append(field.Options, o)
		}

		view.Fields = append(view.Fields, field)
	}
	return view
}

// readForm collects the submitted values of the form's fields. Values are kept
// verbatim since leading spaces are themselves a validation error.
func readForm(c echo.Context, form validation.Form) (validation.Values, error) {
	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}

	values := make(validation.Values, len(form.Fields))
	for _, f := range form.Fields {
		values[f.Name] = params.Get(f.Name)
	}
	return values, nil
}

type fallbackView struct {
	Heading string
	Message string
	Link    string
	Action  string
}
