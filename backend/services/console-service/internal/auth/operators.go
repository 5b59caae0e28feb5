package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown operators or bad passwords.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Operator is a console account declared in configuration.
type Operator struct {
	Name         string
	PasswordHash string
	Role         string
}

// Registry authenticates operators against bcrypt hashes from config. No
// user database: the console has a handful of mission operators.
type Registry struct {
	operators map[string]Operator
}

// NewRegistry indexes the configured operators by name.
func NewRegistry(operators []Operator) *Registry {
	idx := make(map[string]Operator, len(operators))
	for _, op := range operators {
		if op.Name != "" {
			idx[op.Name] = op
		}
	}
	return &Registry{operators: idx}
}

// Authenticate checks the password and returns the operator on success.
func (r *Registry) Authenticate(name, password string) (Operator, error) {
	op, ok := r.operators[name]
	if !ok {
		return Operator{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return Operator{}, ErrInvalidCredentials
	}
	return op, nil
}
