package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"too short", "Ab1", ErrPasswordTooShort},
		{"empty", "", ErrPasswordTooShort},
		{"five chars with upper and digit", "Abc12", ErrPasswordTooShort},
		{"no uppercase", "nouppercase123", ErrPasswordNoUppercase},
		{"no digit", "NoNumbers", ErrPasswordNoDigit},
		{"valid", "Passw0rd", nil},
		{"valid minimal", "Abcde1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePassword_OrderOfChecks(t *testing.T) {
	// a short password missing everything reports length first
	assert.ErrorIs(t, ValidatePassword("abc"), ErrPasswordTooShort)
	// long enough but missing both classes reports uppercase first
	assert.ErrorIs(t, ValidatePassword("abcdefgh"), ErrPasswordNoUppercase)
}
