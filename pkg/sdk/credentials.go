package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the persisted session snapshot: the access token together
// with the identity it was issued for. The two are always written and cleared
// as a unit; a snapshot holding one without the other is malformed.
type Credentials struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	Identity    Identity  `json:"identity"`
	SavedAt     time.Time `json:"saved_at,omitempty"`
}

// Valid reports whether the snapshot is well-formed: a non-empty token paired
// with a parseable identity carrying a known role.
func (c *Credentials) Valid() bool {
	return c != nil && c.AccessToken != "" && c.Identity.ID != "" && c.Identity.Role.Valid()
}

// ExpiresAt extracts the expiry claim from the access token without verifying
// the signature. The token is opaque to every authorization decision; this
// exists purely so `auth status` can display when the token lapses.
func (c *Credentials) ExpiresAt() (time.Time, bool) {
	if c == nil || c.AccessToken == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(c.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
