package validation

import "regexp"

// emailRe accepts the local@domain.tld shape: no whitespace or extra '@',
// and at least one dot in the domain part.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like a deliverable address.
func Email(s string) error {
	if !emailRe.MatchString(s) {
		return newError("invalidEmail")
	}
	return nil
}
