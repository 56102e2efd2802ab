// utils/token_source.go
package utils

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	scorebridge "github.com/opensecurity/scorebridge"
)

// TokenSourceCredential adapts an oauth2.TokenSource into a CredentialFunc,
// so clients whose bearer tokens are short-lived get a fresh token on every
// call. Pair with oauth2 clientcredentials or any other TokenSource:
//
//	client.SetCredentialFunc(utils.TokenSourceCredential(src))
func TokenSourceCredential(src oauth2.TokenSource) scorebridge.CredentialFunc {
	return func(ctx context.Context) (string, error) {
		token, err := src.Token()
		if err != nil {
			return "", fmt.Errorf("fetch token: %w", err)
		}
		return "Bearer " + token.AccessToken, nil
	}
}

// StaticBearerCredential wraps a fixed bearer token as a CredentialFunc via
// oauth2's static source. Mostly useful in tests and examples.
func StaticBearerCredential(token string) scorebridge.CredentialFunc {
	return TokenSourceCredential(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}
