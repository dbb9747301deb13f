package order

import (
	"fmt"

	"shippix/internal/pkg/errs"
)

// PaymentMethod is one of the fixed payment options of the payment page.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Visa
	Fawry
	VodafoneCash
)

// DefaultPaymentMethod is preselected when the payment page opens.
const DefaultPaymentMethod = Visa

var paymentMethodCodes = map[PaymentMethod]string{
	Visa:         "visa",
	Fawry:        "fawry",
	VodafoneCash: "vodafone",
}

var paymentMethodLabels = map[PaymentMethod]string{
	Visa:         "Visa Card",
	Fawry:        "Fawry",
	VodafoneCash: "Vodafone Cash",
}

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{Visa, Fawry, VodafoneCash}
}

// ParsePaymentMethod maps a form code ("visa", "fawry", "vodafone") to a method.
// An empty code selects DefaultPaymentMethod.
func ParsePaymentMethod(code string) (PaymentMethod, error) {
	if code == "" {
		return DefaultPaymentMethod, nil
	}
	for m, c := range paymentMethodCodes {
		if c == code {
			return m, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a supported payment method", code))
}

// Validate rejects UnknownPaymentMethod and undefined values.
func (m PaymentMethod) Validate() error {
	if _, ok := paymentMethodCodes[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// Code returns the form value of the method, or "" for invalid methods.
func (m PaymentMethod) Code() string {
	return paymentMethodCodes[m]
}

// String returns the display label of the method.
func (m PaymentMethod) String() string {
	if l, ok := paymentMethodLabels[m]; ok {
		return l
	}
	return "Unknown"
}
