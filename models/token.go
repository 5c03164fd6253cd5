package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by a session token: the standard
// registered claims (sub holds the user ID) plus the user's display name.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Name is the display name of the user at the time of issuance.
	Name string `json:"name"`
}

// Token wraps a session JWT with the values the server needs after parsing.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Name is the display name extracted from the "name" claim.
	Name string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
