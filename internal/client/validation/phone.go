package validation

import "regexp"

// Moroccan mobile numbers: international form +2126XXXXXXXX or the local
// 06XXXXXXXX form.
var phoneRe = regexp.MustCompile(`^(\+2126|06)\d{8}$`)

// PhoneNumber validates the regional mobile number pattern.
func PhoneNumber(s string) error {
	if !phoneRe.MatchString(s) {
		return newError("invalidPhoneNumber")
	}
	return nil
}
