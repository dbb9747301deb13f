package order

import (
	"errors"
	"strconv"
	"strings"

	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/guard"
)

// ErrDraftIsNotConstructed is returned when a Draft was not created through NewDraft.
var ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

// Draft is the order a business owner fills in on the create-order page. It is a
// flat value bag: none of its fields refer to a stored entity.
//
// A Draft only exists once every field passed the create-order form rules, so
// its numeric fields are always parsed and finite.
type Draft struct {
	customerName     string
	emailAddress     string
	phoneNumber      string
	streetAddress    string
	city             string
	notesToDriver    string
	itemsDescription string
	packageValue     string
	totalWeight      string

	weightKg float64
	guard    guard.ConstructorGuard
}

// NewDraft validates values against the create-order form and builds a Draft.
//
// Returns a *validation.InvalidFormError carrying the message of every failing
// field when the values are rejected.
//
// Example:
//
//	draft, err := order.NewDraft(validation.Values{
//	    "customerName": "John Doe",
//	    "totalWeight":  "5.5",
//	    // ...
//	})
func NewDraft(values validation.Values) (Draft, error) {
	if err := validation.CreateOrderForm().Validate(values); err != nil {
		return Draft{}, err
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(values.Get("totalWeight")), 64)
	if err != nil {
		return Draft{}, err
	}

	return Draft{
		customerName:     values.Get("customerName"),
		emailAddress:     values.Get("emailAddress"),
		phoneNumber:      values.Get("phoneNumber"),
		streetAddress:    values.Get("streetAddress"),
		city:             values.Get("city"),
		notesToDriver:    values.Get("notesToDriver"),
		itemsDescription: values.Get("itemsDescription"),
		packageValue:     values.Get("packageValue"),
		totalWeight:      values.Get("totalWeight"),
		weightKg:         weight,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the Draft was built by NewDraft.
func (d Draft) Validate() error {
	return d.guard.Validate(ErrDraftIsNotConstructed)
}

// Values returns the raw form values, used to prefill the create-order page
// when an order is sent back for editing.
func (d Draft) Values() validation.Values {
	return validation.Values{
		"customerName":     d.customerName,
		"emailAddress":     d.emailAddress,
		"phoneNumber":      d.phoneNumber,
		"streetAddress":    d.streetAddress,
		"city":             d.city,
		"notesToDriver":    d.notesToDriver,
		"itemsDescription": d.itemsDescription,
		"packageValue":     d.packageValue,
		"totalWeight":      d.totalWeight,
	}
}

func (d Draft) CustomerName() string     { return d.customerName }
func (d Draft) EmailAddress() string     { return d.emailAddress }
func (d Draft) PhoneNumber() string      { return d.phoneNumber }
func (d Draft) StreetAddress() string    { return d.streetAddress }
func (d Draft) City() string             { return d.city }
func (d Draft) NotesToDriver() string    { return d.notesToDriver }
func (d Draft) ItemsDescription() string { return d.itemsDescription }
func (d Draft) PackageValue() string     { return d.packageValue }

// WeightKg returns the parsed package weight.
func (d Draft) WeightKg() float64 {
	return d.weightKg
}
