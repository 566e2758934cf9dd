package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// AuthToken represents a signed JWT bearer token along with its expiry.
// The Token field contains the serialized JWT string. Exp stores the
// expiration timestamp. The token is self-expiring: nothing is persisted
// for it, and the middleware rejects it once the exp claim has passed.
type AuthToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAuthToken builds and signs an HS256 JWT for a user. The claim set
// carries the subject id, email, display name and role; the expiry is
// the issuance time plus ttlDays (7 days by default at the config
// layer). The secret must match the one the middleware verifies with.
func NewAuthToken(secret string, u *model.User, ttlDays int) (AuthToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{Token: signed, Exp: exp}, nil
}
