package kernel

import "strings"

// IsEUCountry reports whether countryCode is one of the 27 EU member states.
// The lookup is an exact match on the two-letter code, case-insensitive.
func IsEUCountry(countryCode string) bool {
	_, ok := euCountries[strings.ToUpper(countryCode)]
	return ok
}

// IsDomestic reports whether a shipment stays inside one country.
func IsDomestic(fromCountry, toCountry string) bool {
	return strings.EqualFold(fromCountry, toCountry)
}

// AppliesCustomsDuties is the single rule deciding whether import tax and duty
// are populated on a quote: never for domestic shipments, never between two EU
// member states, always otherwise.
func AppliesCustomsDuties(fromCountry, toCountry string, isDomestic bool) bool {
	if isDomestic {
		return false
	}
	if IsEUCountry(fromCountry) && IsEUCountry(toCountry) {
		return false
	}
	return true
}
