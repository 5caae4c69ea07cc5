package auth

import "errors"

// User represents an operator account. Accounts are seeded from
// configuration and live only in process memory.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}

// ErrInvalidCredentials is returned for any unknown email or wrong
// password so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")
