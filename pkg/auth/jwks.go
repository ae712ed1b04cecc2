package auth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// JWKSAuthenticator checks the token signature against the issuer's published keys
type JWKSAuthenticator struct {
	validator *validator.Validator
}

func NewJWKSAuthenticator(domain string, audience string) (*JWKSAuthenticator, error) {
	issuerURL, err := url.Parse("https://" + domain + "/")
	if err != nil {
		return nil, fmt.Errorf("parse issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("set up jwt validator: %w", err)
	}

	return &JWKSAuthenticator{validator: jwtValidator}, nil
}

func (a *JWKSAuthenticator) Verify(token string) (string, error) {
	token = StripScheme(token)
	if token == "" {
		return "", ErrUnauthorized
	}

	claimsI, err := a.validator.ValidateToken(context.Background(), token)
	if err != nil {
		return "", ErrUnauthorized
	}

	claims, ok := claimsI.(*validator.ValidatedClaims)
	if !ok || claims.RegisteredClaims.Subject == "" {
		return "", ErrUnauthorized
	}

	return claims.RegisteredClaims.Subject, nil
}

// FromEnvironment uses JWKS verification when an issuer domain is configured and falls back to
// reading the token claims otherwise
func FromEnvironment(env map[string]string) (Authenticator, error) {
	if env["NAVIGATOR_AUTH_DOMAIN"] == "" {
		return ClaimsAuthenticator{}, nil
	}

	return NewJWKSAuthenticator(env["NAVIGATOR_AUTH_DOMAIN"], env["NAVIGATOR_AUTH_AUDIENCE"])
}
