package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type AuthService interface {
	// Login authenticates the fixed username/password pair and
	// returns the one valid credential token.
	//
	// It returns ErrInvalidCredentials if either field doesn't
	// match the configured pair.
	Login(username, password string) (string, error)

	// VerifyToken checks a presented credential against the valid
	// token. There is no per-user distinction and no expiry; the
	// token stays valid for the process lifetime.
	//
	// It returns ErrInvalidToken on mismatch.
	VerifyToken(token string) error
}
