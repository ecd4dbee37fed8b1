package services

import (
	"crypto/subtle"
	"fmt"

	"messhall/pkg/utils"
)

const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

// Authenticator turns a presented password into its stored form and checks
// presented passwords against it.
type Authenticator interface {
	Hash(password string) (string, error)
	Verify(stored, presented string) bool
}

func NewAuthenticator(scheme string) (Authenticator, error) {
	switch scheme {
	case PasswordSchemePlain, "":
		return plainAuthenticator{}, nil
	case PasswordSchemeBcrypt:
		return bcryptAuthenticator{}, nil
	}
	return nil, fmt.Errorf("unknown password scheme %q", scheme)
}

// plainAuthenticator stores passwords as given and compares them verbatim.
type plainAuthenticator struct{}

func (plainAuthenticator) Hash(password string) (string, error) {
	return password, nil
}

func (plainAuthenticator) Verify(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

type bcryptAuthenticator struct{}

func (bcryptAuthenticator) Hash(password string) (string, error) {
	return utils.HashPassword(password)
}

func (bcryptAuthenticator) Verify(stored, presented string) bool {
	return utils.ComparePasswords(stored, presented) == nil
}
