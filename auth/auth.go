package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie browsers may carry the token in.
const CookieName = "auth_token"

var ErrNoSecret = errors.New("auth: JWT secret key not set")

// Config describes how tokens are signed and what they must claim.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// CreateToken issues an HS256 token for subject.
func CreateToken(cfg Config, subject, nickname string) (string, error) {
	if cfg.Secret == "" {
		return "", ErrNoSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"sub":      subject,
			"nickname": nickname,
			"iss":      cfg.Issuer,
			"aud":      []string{cfg.Audience},
			"iat":      now.Unix(),
			"exp":      now.Add(ttl).Unix(),
		})

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks signature, issuer, audience and expiry and returns the
// token's subject.
func VerifyToken(cfg Config, tokenString string) (string, error) {
	if cfg.Secret == "" {
		return "", ErrNoSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	return token.Claims.GetSubject()
}
