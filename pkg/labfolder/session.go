package labfolder

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt reports when the session's bearer token expires, if the
// token is a JWT carrying an exp claim. The token is decoded without
// signature verification; the result is informational only and never gates
// requests, since the server is the authority on token validity.
func (c *Client) TokenExpiresAt() (time.Time, bool) {
	if c.token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
