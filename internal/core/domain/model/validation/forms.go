package validation

import (
	"regexp"
	"sort"
)

// Names of the registered forms.
const (
	FormCreateOrder = "create-order"
	FormSignup      = "signup"
	FormLogin       = "login"
	FormAdminLogin  = "admin-login"
	FormReschedule  = "reschedule"
)

// Reschedule reasons and address choices.
const (
	ReasonNotAvailable  = "not-available"
	ReasonChangeTime    = "change-time"
	ReasonChangeAddress = "change-address"
	ReasonEmergency     = "emergency"
	ReasonOther         = "other"

	AddressHome   = "Home"
	AddressOffice = "Office"
	AddressNew    = "New"
)

var (
	email             = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonLetterOrSpace  = regexp.MustCompile(`[^a-zA-Z\s]`)
	lettersAndSpaces  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	anyLetter         = regexp.MustCompile(`[a-zA-Z]`)
	phoneDisallowed   = regexp.MustCompile(`[^0-9\s+()-]`)
	addressDisallowed = regexp.MustCompile(`[^a-zA-Z0-9\s,.-]`)
	weightDisallowed  = regexp.MustCompile(`[^0-9.]`)
	nationalID        = regexp.MustCompile(`^\d{14}$`)
	anyDigit          = regexp.MustCompile(`\d`)
	anySymbol         = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
	businessName      = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	pickupLocation    = regexp.MustCompile(`^[a-zA-Z0-9\s,.]+$`)
	username          = regexp.MustCompile(`^[a-zA-Z0-9_@.-]+$`)
	isoDate           = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	clockTime         = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// CreateOrderForm returns the order draft form of the business owner.
func CreateOrderForm() Form {
	return Form{
		Name: FormCreateOrder,
		Fields: []Field{
			{
				Name: "customerName", Label: "Customer Name", Required: true,
				Rules: []Rule{
					{NotBlank, "Customer Name must not be blank."},
					{NoDigits, "Customer Name numbers are not allowed."},
					{NoLeadingSpace, "Customer Name first character cannot have space."},
					{Excludes(nonLetterOrSpace), "Customer Name special characters are not allowed."},
				},
			},
			{
				Name: "emailAddress", Label: "Email Address", Required: true,
				Rules: []Rule{
					{NotBlank, "Email Address must not be blank."},
					{Matches(email), "Email Address must be in valid email format."},
				},
			},
			{
				Name: "phoneNumber", Label: "Customer Phone Number", Required: true,
				Rules: []Rule{
					{NotBlank, "Customer Phone Number must not be blank."},
					{NoLeadingSpace, "Customer Phone Number first character cannot have space."},
					{Excludes(anyLetter), "Customer Phone Number characters are not allowed."},
					{Excludes(phoneDisallowed), "Customer Phone Number special characters are not allowed."},
					{DigitCount(10, 12), "Customer Phone Number must be 10-12 digits long."},
				},
			},
			{
				Name: "streetAddress", Label: "Delivery Address", Required: true,
				Rules: []Rule{
					{NotBlank, "Delivery Address must not be blank."},
					{NoLeadingSpace, "Delivery Address first character cannot have space."},
					{Excludes(addressDisallowed), "Delivery Address special characters are not allowed (except , . -)."},
				},
			},
			{
				Name: "city", Label: "City", Required: true,
				Rules: []Rule{
					{NotBlank, "City must not be blank."},
				},
			},
			{Name: "notesToDriver", Label: "Notes to Driver"},
			{
				Name: "itemsDescription", Label: "Order Description", Required: true,
				Rules: []Rule{
					{NotBlank, "Order Description must not be blank."},
				},
			},
			{
				Name: "packageValue", Label: "Package Value", Required: true,
				Rules: []Rule{
					{NotBlank, "Package Value must not be blank."},
					{FiniteNumber, "Package Value must be a number."},
				},
			},
			{
				Name: "totalWeight", Label: "Package Weight", Required: true,
				Rules: []Rule{
					{NotBlank, "Package Weight must not be blank."},
					{Excludes(anyLetter), "Package Weight characters are not allowed."},
					{Excludes(weightDisallowed), "Package Weight special characters are not allowed."},
					{FiniteNumber, "Package Weight must be a valid number."},
				},
			},
		},
	}
}

// SignupForm returns the business owner registration form.
func SignupForm() Form {
	return Form{
		Name: FormSignup,
		Fields: []Field{
			{
				Name: "ownerName", Label: "Owner Name", Required: true,
				Rules: []Rule{
					{NotBlank, "Owner name is required"},
					{NoDigits, "Numbers are not allowed in owner name"},
					{NoLeadingSpace, "First character cannot be a space"},
					{Matches(lettersAndSpaces), "Special characters are not allowed in owner name"},
				},
			},
			{
				Name: "email", Label: "Email", Required: true,
				Rules: []Rule{
					{NotBlank, "Email is required"},
					{NoLeadingSpace, "First character cannot be a space"},
					{Matches(email), "Email must be in valid format (e.g., user@example.com)"},
				},
			},
			{
				Name: "phoneNumber", Label: "Phone Number", Required: true,
				Rules: []Rule{
					{NotBlank, "Phone number is required"},
					{NoLeadingSpace, "First character cannot be a space"},
					{DigitsOnlyWithoutSpaces, "Only numbers are allowed in phone number"},
					{LengthWithoutSpaces(10, 13), "Phone number must be 10-13 digits"},
				},
			},
			{
				Name: "nationalId", Label: "National ID", Required: true,
				Rules: []Rule{
					{NotBlank, "National ID is required"},
					{Matches(nationalID), "National ID must be exactly 14 digits"},
				},
			},
			{
				Name: "password", Label: "Password", Required: true,
				Rules: []Rule{
					{MinLength(1), "Password is required"},
					{MinLength(8), "Password must be at least 8 characters"},
					{Matches(anyDigit), "Password must contain at least one numeric digit"},
					{Matches(anySymbol), "Password must contain at least one special character"},
				},
			},
			{
				Name: "confirmPassword", Label: "Confirm Password", Required: true,
				Rules: []Rule{
					{MinLength(1), "Confirm password is required"},
					{EqualsField("password"), "Passwords must match"},
				},
			},
			{
				Name: "businessName", Label: "Business Name", Required: true,
				Rules: []Rule{
					{NotBlank, "Business name is required"},
					{NoLeadingSpace, "First character cannot be a space"},
					{Matches(businessName), "Special characters are not allowed in business name"},
				},
			},
			{
				Name: "businessType", Label: "Business Type", Required: true,
				Rules: []Rule{
					{NotBlank, "Business type is required"},
					{NoLeadingSpace, "First character cannot be a space"},
				},
			},
			{
				Name: "pickupLocation", Label: "Pickup Location", Required: true,
				Rules: []Rule{
					{NotBlank, "Pickup location is required"},
					{NoLeadingSpace, "First character cannot be a space"},
					{Matches(pickupLocation), "Only letters, numbers, spaces, commas, and periods are allowed"},
				},
			},
		},
	}
}

// LoginForm returns the business owner sign-in form.
func LoginForm() Form {
	return Form{
		Name: FormLogin,
		Fields: []Field{
			{
				Name: "username", Label: "Username", Required: true,
				Rules: []Rule{
					{NotBlank, "Username is required"},
					{MinLength(3), "Username must be at least 3 characters"},
					{Matches(username), "Username contains invalid characters"},
				},
			},
			{
				Name: "password", Label: "Password", Required: true,
				Rules: []Rule{
					{MinLength(1), "Password is required"},
					{MinLength(6), "Password must be at least 6 characters"},
				},
			},
		},
	}
}

// AdminLoginForm returns the admin console sign-in form.
func AdminLoginForm() Form {
	return Form{
		Name: FormAdminLogin,
		Fields: []Field{
			{
				Name: "email", Label: "Email", Required: true,
				Rules: []Rule{
					{NotBlank, "Email is required"},
					{Matches(email), "Please enter a valid email address"},
				},
			},
			{
				Name: "password", Label: "Password", Required: true,
				Rules: []Rule{
					{MinLength(1), "Password is required"},
					{MinLength(6), "Password must be at least 6 characters"},
				},
			},
		},
	}
}

// RescheduleForm returns the shipment pickup reschedule form.
func RescheduleForm() Form {
	newAddressNotChosen := func(form Values) bool {
		return form.Get("selectedAddress") != AddressNew
	}
	return Form{
		Name: FormReschedule,
		Fields: []Field{
			{
				Name: "reason", Label: "Reason", Required: true,
				Rules: []Rule{
					{NotBlank, "Reason is required"},
					{OneOf(ReasonNotAvailable, ReasonChangeTime, ReasonChangeAddress, ReasonEmergency, ReasonOther),
						"Please select a valid reason"},
				},
			},
			{
				Name: "pickupDate", Label: "Pickup Date", Required: true,
				Rules: []Rule{
					{NotBlank, "Pickup date is required"},
					{Matches(isoDate), "Pickup date must be in YYYY-MM-DD format"},
				},
			},
			{
				Name: "pickupTime", Label: "Pickup Time", Required: true,
				Rules: []Rule{
					{NotBlank, "Pickup time is required"},
					{Matches(clockTime), "Pickup time must be in HH:MM format"},
				},
			},
			{
				Name: "selectedAddress", Label: "Address", Required: true,
				Rules: []Rule{
					{OneOf(AddressHome, AddressOffice, AddressNew), "Please choose an address"},
				},
			},
			{
				Name: "newAddress", Label: "New Address",
				Rules: []Rule{
					{Unless(newAddressNotChosen, NotBlank), "New address is required"},
					{Unless(newAddressNotChosen, Excludes(addressDisallowed)),
						"Address special characters are not allowed (except , . -)."},
				},
			},
			{Name: "specialInstructions", Label: "Special Instructions"},
		},
	}
}

var registry = map[string]func() Form{
	FormCreateOrder: CreateOrderForm,
	FormSignup:      SignupForm,
	FormLogin:       LoginForm,
	FormAdminLogin:  AdminLoginForm,
	FormReschedule:  RescheduleForm,
}

// Lookup returns the registered form with the given name.
func Lookup(name string) (Form, bool) {
	build, ok := registry[name]
	if !ok {
		return Form{}, false
	}
	return build(), true
}

// Names returns the names of all registered forms, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
