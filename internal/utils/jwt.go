package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-expense-tracker/models"
)

var ErrInvalidTokenParams = errors.New("invalid params for generating session token")

// GenerateSessionToken signs session into an HMAC-SHA256 JWT.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the logged-in email, empty for anonymous sessions
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer, tokenDuration or signKey is empty or zero.
func GenerateSessionToken(issuer string, session models.Session, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.SessionToken{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.SessionToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Session: session,
	}
	if session.User != nil {
		claims.Subject = session.User.Email
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}
	claims.SignedString = tokenString

	return *claims, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and returns the session it carries.
//
// A token whose subject disagrees with the embedded session user is
// rejected.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	claims := &models.SessionToken{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	var email string
	if claims.Session.User != nil {
		email = claims.Session.User.Email
	}
	if claims.Subject != email {
		return models.SessionToken{}, errors.New("session subject mismatch")
	}

	claims.SignedString = tokenString
	return *claims, nil
}
