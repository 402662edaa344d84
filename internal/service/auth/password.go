package auth

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a login password against a stored hash.
type PasswordVerifier interface {
	// Compare returns nil when password hashes to hashedPassword.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier checks bcrypt hashes as written by the user store.
type BcryptVerifier struct{}

var _ PasswordVerifier = (*BcryptVerifier)(nil)

// NewBcryptVerifier returns a BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare returns bcrypt.ErrMismatchedHashAndPassword on a wrong password.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
