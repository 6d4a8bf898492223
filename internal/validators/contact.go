package validators

import (
	"net/mail"
	"strings"
	"unicode"
)

// NormalizeEmail lowercases and validates an address. Empty input is
// accepted and returned as "".
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", true
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasSuffix(domain, ".") {
		return "", false
	}
	return email, true
}

// NormalizePhone keeps digits and a leading "+", requiring 7 to 15 digits.
func NormalizePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", true
	}

	var b strings.Builder
	digits := 0
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", false
		}
	}

	if digits < 7 || digits > 15 {
		return "", false
	}
	return b.String(), true
}
