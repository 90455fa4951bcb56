package auth

import "errors"

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// Password policy violations, in the order they are checked.
var (
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one number")
)

// ValidatePassword checks plaintext password strength. Rules are applied in
// order and the first violation is returned.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !containsRange(password, 'A', 'Z') {
		return ErrPasswordNoUppercase
	}
	if !containsRange(password, '0', '9') {
		return ErrPasswordNoDigit
	}
	return nil
}

func containsRange(s string, lo, hi byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= lo && s[i] <= hi {
			return true
		}
	}
	return false
}
