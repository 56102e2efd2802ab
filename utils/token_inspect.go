// utils/token_inspect.go
package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenInfo summarizes the registered claims of a JWT bearer credential.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt *time.Time
	Expired   bool
}

// InspectToken decodes a JWT credential WITHOUT verifying its signature and
// reports its registered claims. Use it as a preflight before attaching a
// vendor-issued bearer token, to fail fast on tokens that are already
// expired instead of burning a request on a guaranteed 401.
func InspectToken(raw string) (*TokenInfo, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	info := &TokenInfo{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		info.ExpiresAt = &t
		info.Expired = time.Now().After(t)
	}
	return info, nil
}
