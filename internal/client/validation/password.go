package validation

const passwordSymbols = "@$!%*?&"

// Password enforces the strength rule: at least 8 characters, drawn only
// from letters, digits and the symbol set, with at least one lowercase
// letter, one uppercase letter, one digit and one symbol.
//
// RE2 has no lookaheads, so the rule is written out by hand instead of as
// a single pattern.
func Password(s string) error {
	if len(s) < 8 {
		return newError("invalidPassword")
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case containsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			// Character outside the allowed set.
			return newError("invalidPassword")
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return newError("invalidPassword")
	}
	return nil
}

// PasswordsMatch checks the confirmation field against the password.
func PasswordsMatch(password, confirm string) error {
	if password != confirm {
		return newError("passwordsDontMatch")
	}
	return nil
}

func containsRune(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
