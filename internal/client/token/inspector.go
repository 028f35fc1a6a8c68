// Package token reads the claims of an opaque bearer token on the client.
//
// Nothing here verifies a signature. The backend remains the authority on
// whether a token is valid; the inspector only lets the console notice an
// expired session before it talks to the backend. Anything that cannot be
// decoded is treated as expired.
package token

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a token cannot be split or its payload
// segment cannot be decoded into a JSON object.
var ErrMalformed = errors.New("malformed token")

const segmentCount = 3

// maxExp is 9999-12-31T23:59:59Z. Larger exp values do not fit the
// int64 conversion in the claims decoder and are rejected.
const maxExp = 253402300799

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeClaims returns the claims carried in the payload segment of raw.
func DecodeClaims(raw string) (jwt.MapClaims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != segmentCount {
		return nil, ErrMalformed
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, ErrMalformed
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil || claims == nil {
		return nil, ErrMalformed
	}
	return claims, nil
}

// ExpiresAt returns the exp claim of raw. A missing, non-numeric or out of
// range exp is reported as ErrMalformed.
func ExpiresAt(raw string) (time.Time, error) {
	claims, err := DecodeClaims(raw)
	if err != nil {
		return time.Time{}, err
	}
	if f, ok := claims["exp"].(float64); ok && math.Abs(f) > maxExp {
		return time.Time{}, ErrMalformed
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrMalformed
	}
	return exp.Time, nil
}

// Inspector checks token expiry against its own clock.
type Inspector struct {
	Now func() time.Time
}

// NewInspector returns an Inspector using the wall clock.
func NewInspector() *Inspector {
	return &Inspector{Now: time.Now}
}

// IsExpired reports whether raw must be considered expired: undecodable
// tokens, tokens without exp and tokens whose exp lies before the current
// second are all expired.
func (i *Inspector) IsExpired(raw string) bool {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return true
	}
	return exp.Unix() < i.now().Unix()
}

func (i *Inspector) now() time.Time {
	if i == nil || i.Now == nil {
		return time.Now()
	}
	return i.Now()
}

// IsExpired checks raw against the wall clock.
func IsExpired(raw string) bool {
	return NewInspector().IsExpired(raw)
}
