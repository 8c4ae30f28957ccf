package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/andrewpaige1/flashlearn-api/auth"
)

// CustomClaims carries the non-registered claims the API reads.
type CustomClaims struct {
	Nickname string `json:"nickname"`
}

// Validate implements validator.CustomClaims.
func (c *CustomClaims) Validate(context.Context) error {
	return nil
}

// EnsureValidToken rejects requests without a valid HS256 bearer token (or
// auth_token cookie) issued for this API. Validated claims are stored in the
// request context under jwtmiddleware.ContextKey{}.
func EnsureValidToken(cfg auth.Config) (func(http.Handler) http.Handler, error) {
	if cfg.Secret == "" {
		return nil, auth.ErrNoSecret
	}

	keyFunc := func(context.Context) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims {
			return &CustomClaims{}
		}),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("EnsureValidToken: encountered error while validating JWT: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Failed to validate JWT."}`))
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
		jwtmiddleware.WithTokenExtractor(jwtmiddleware.MultiTokenExtractor(
			jwtmiddleware.AuthHeaderTokenExtractor,
			jwtmiddleware.CookieTokenExtractor(auth.CookieName),
		)),
	)

	return mw.CheckJWT, nil
}
