package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

type authServiceImpl struct {
	logger   zerolog.Logger
	username string
	password string
	// The single valid credential, minted once at construction.
	// Every verification is a comparison against this value.
	token string
}

// NewAuthService builds the static-credential auth gate. The token is a
// JWT signed with the configured key so it looks like any other bearer
// token on the wire, but it never rotates and carries no per-user claims.
func NewAuthService(
	logger zerolog.Logger,
	username string,
	password string,
	jwtIssuer string,
	jwtSigningKey string,
) (AuthService, error) {
	claims := jwt.RegisteredClaims{
		Issuer:   jwtIssuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(jwtSigningKey))
	if err != nil {
		return nil, fmt.Errorf("sign credential token: %w", err)
	}

	logger.Info().
		Str("issuer", jwtIssuer).
		Msg("minted credential token")

	return &authServiceImpl{
		logger:   logger,
		username: username,
		password: password,
		token:    token,
	}, nil
}

func (s *authServiceImpl) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		s.logger.Warn().
			Str("username", username).
			Msg("login rejected")
		return "", ErrInvalidCredentials
	}

	s.logger.Info().
		Str("username", username).
		Msg("login succeeded")
	return s.token, nil
}

func (s *authServiceImpl) VerifyToken(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
