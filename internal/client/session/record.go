package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Identity describes the logged-in user as returned by the marketplace API.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Record is the persisted credential: identity plus bearer token.
// It is stored flat, matching the login/register response body.
type Record struct {
	Identity
	Token string `json:"token"`
}

// Complete reports whether r can be persisted: a role and a token are
// mandatory, everything else is optional.
func (r Record) Complete() bool {
	return strings.TrimSpace(r.Role) != "" && strings.TrimSpace(r.Token) != ""
}

func (r Record) HasRole(role string) bool {
	return r.Role == role
}

// ExpiresAt returns the exp claim of the token when the token is a JWT.
// The signature is not checked; the value is for display only.
func (r Record) ExpiresAt() (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(r.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
