package restaurant

import (
	"errors"
	"unicode/utf8"

	"qrave/internal/pkg/errs"
	"qrave/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// bcrypt ignores input beyond 72 bytes, so longer passwords are refused.
	MaxPasswordBytes = 72
)

var (
	ErrCredentialIsNotConstructed = errors.New("Credential must be created via NewCredential or CredentialFromHash")

	// ErrInvalidCredentials is deliberately vague about whether the slug or
	// the password was wrong.
	ErrInvalidCredentials = errors.New("invalid slug or password")
)

// Credential holds the bcrypt hash of a restaurant password.
type Credential struct {
	hash  []byte
	guard guard.ConstructorGuard
}

// NewCredential hashes password with bcrypt.DefaultCost.
func NewCredential(password string) (Credential, error) {
	return NewCredentialWithCost(password, bcrypt.DefaultCost)
}

// NewCredentialWithCost hashes password with an explicit bcrypt cost.
func NewCredentialWithCost(password string, cost int) (Credential, error) {
	if n := utf8.RuneCountInString(password); n < MinPasswordLength {
		return Credential{}, errs.NewValueIsOutOfRangeError("password length", n, MinPasswordLength, MaxPasswordBytes)
	}
	if len(password) > MaxPasswordBytes {
		return Credential{}, errs.NewValueIsOutOfRangeError("password bytes", len(password), MinPasswordLength, MaxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credential{}, errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return Credential{hash: hash, guard: guard.NewConstructorGuard()}, nil
}

// CredentialFromHash restores a stored hash.
func CredentialFromHash(hash string) (Credential, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return Credential{}, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}
	return Credential{hash: []byte(hash), guard: guard.NewConstructorGuard()}, nil
}

// Hash returns the encoded bcrypt hash for storage.
func (c Credential) Hash() string {
	return string(c.hash)
}

// Matches reports whether password hashes to the stored value.
func (c Credential) Matches(password string) bool {
	if len(c.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
}

func (c Credential) Validate() error {
	return c.guard.Validate(ErrCredentialIsNotConstructed)
}
