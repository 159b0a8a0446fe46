package careapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expirySkew pads local expiry checks so a token about to lapse mid-flight
// is refreshed up front rather than costing a 401 round-trip.
const expirySkew = 30 * time.Second

// tokenExpired reports whether the access token's embedded exp claim has
// passed. The token signature is NOT verified; this is a local optimization
// only, the server remains the authority. Tokens that cannot be decoded or
// carry no expiry are treated as expired (fail safe, force refresh).
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Now().Add(expirySkew).After(exp.Time)
}
