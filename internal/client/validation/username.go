package validation

import "regexp"

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// Username accepts 3 to 20 alphanumeric or underscore characters.
func Username(s string) error {
	if !usernameRe.MatchString(s) {
		return newError("invalidUsername")
	}
	return nil
}
