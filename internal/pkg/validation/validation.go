package validation

import "regexp"

// VIN: alphanumeric, no whitespace. Real VINs are 17 chars excluding I/O/Q
// but the inventory also carries pre-1981 and trade plates, so only the
// character class is enforced.
var vinRe = regexp.MustCompile(`^[A-Za-z0-9\-]+$`)

func IsValidVIN(vin string) bool {
	return vin != "" && vinRe.MatchString(vin)
}

// IsValidYear bounds the model year to something a dealership can stock.
func IsValidYear(year int) bool {
	return year >= 1900 && year <= 2100
}
