package kernel

import (
	"fmt"
	"strings"

	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrCountryIsNotConstructed is returned when a zero-value Country is used.
var ErrCountryIsNotConstructed = errs.NewValueIsRequiredError("country must be created via NewCountry")

// euCountries is the fixed set of the 27 EU member states by ISO 3166-1 alpha-2 code.
var euCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
}

// Country is an ISO 3166-1 alpha-2 country code value object, always upper case.
//
// Example:
//
//	de, err := kernel.NewCountry("de")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(de.Code()) // DE
type Country struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewCountry validates and normalizes a two-letter country code.
//
// Returns:
//   - Country: the normalized (upper case) country
//   - error: ValueIsRequiredError for an empty code, ValueIsInvalidError for anything
//     that is not exactly two ASCII letters
func NewCountry(code string) (Country, error) {
	c := Country{guard: guard.NewConstructorGuard()}
	if err := c.setCode(code); err != nil {
		return Country{}, err
	}
	return c, nil
}

// Validate checks that the Country was created through NewCountry.
func (c Country) Validate() error {
	return c.guard.Validate(ErrCountryIsNotConstructed)
}

// Code returns the upper case alpha-2 code.
func (c Country) Code() string {
	return c.code
}

func (c Country) String() string {
	return c.code
}

func (c *Country) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("country")
	}
	if len(code) != 2 || !isASCIILetter(code[0]) || !isASCIILetter(code[1]) {
		return errs.NewValueIsInvalidErrorWithCause("country", fmt.Errorf("%q is not an ISO 3166-1 alpha-2 code", code))
	}

	c.code = strings.ToUpper(code)
	return nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
