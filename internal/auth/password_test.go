package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBcryptCost = 4

func TestHashPassword(t *testing.T) {
	password := "Passw0rd"
	hashed, err := HashPassword(password, testBcryptCost)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)
}

func TestComparePassword(t *testing.T) {
	password := "Passw0rd"
	hashed, err := HashPassword(password, testBcryptCost)
	assert.NoError(t, err)

	assert.NoError(t, ComparePassword(hashed, password))
	assert.Error(t, ComparePassword(hashed, "wrongpassword"))
}

func TestComparePassword_InvalidHash(t *testing.T) {
	assert.Error(t, ComparePassword("notahash", "Passw0rd"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("Passw0rd", testBcryptCost)
	assert.NoError(t, err)
	second, err := HashPassword("Passw0rd", testBcryptCost)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
