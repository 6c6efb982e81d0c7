package order

import (
	"errors"

	"foodorder/internal/pkg/errs"
)

// RedactedValue replaces personal fields when an account is deleted.
// Orders are never hard-deleted; their contact data is overwritten with this
// sentinel instead.
const RedactedValue = "REDACTED"

// Address is the delivery destination of an order: a street address with
// optional geo coordinates. All four textual sub-fields are required; the
// coordinates are set only when the client supplied them.
type Address struct {
	street    string
	city      string
	state     string
	zip       string
	latitude  *float64
	longitude *float64

	isConstructed bool
}

// ErrAddressIsNotConstructed is returned when an Address was not created through
// NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// NewAddress creates a validated delivery address. street, city, state, and zip
// are all required; latitude/longitude are optional and must be passed together.
func NewAddress(street, city, state, zip string, latitude, longitude *float64) (Address, error) {
	a := Address{
		isConstructed: true,
	}

	if err := errors.Join(
		requireField("street", street),
		requireField("city", city),
		requireField("state", state),
		requireField("zip", zip),
	); err != nil {
		return Address{}, err
	}

	if (latitude == nil) != (longitude == nil) {
		return Address{}, errs.NewValueIsInvalidError("coordinates must include both latitude and longitude")
	}

	a.street, a.city, a.state, a.zip = street, city, state, zip
	a.latitude, a.longitude = latitude, longitude
	return a, nil
}

// RedactedAddress returns the sentinel address written over a deleted account's
// orders.
func RedactedAddress() Address {
	return Address{
		street:        RedactedValue,
		city:          RedactedValue,
		state:         RedactedValue,
		zip:           RedactedValue,
		isConstructed: true,
	}
}

// Validate ensures the Address was constructed through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line of the address.
func (a Address) Street() string { return a.street }

// City returns the city of the address.
func (a Address) City() string { return a.city }

// State returns the state of the address.
func (a Address) State() string { return a.state }

// Zip returns the postal code of the address.
func (a Address) Zip() string { return a.zip }

// Latitude returns the optional latitude, nil when unset.
func (a Address) Latitude() *float64 { return a.latitude }

// Longitude returns the optional longitude, nil when unset.
func (a Address) Longitude() *float64 { return a.longitude }

// IsRedacted reports whether the address carries the redaction sentinel.
func (a Address) IsRedacted() bool {
	return a.street == RedactedValue
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
