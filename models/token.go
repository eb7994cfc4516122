package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the signed form of a [Session] carried in the session
// cookie.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set: "iss" is the
// configured issuer, "sub" the logged-in email (empty for anonymous
// sessions) and "exp" bounds the cookie lifetime.
type SessionToken struct {
	jwt.RegisteredClaims

	// Session is the state round-tripped between requests.
	Session Session `json:"session"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
