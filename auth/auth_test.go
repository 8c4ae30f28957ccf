package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testConfig = Config{Secret: "s3cret", Issuer: "flashlearn", Audience: "flashlearn-api"}

func TestCreateAndVerifyToken(t *testing.T) {
	token, err := CreateToken(testConfig, "user|123", "ada")
	if err != nil {
		t.Fatalf("CreateToken() error: %v", err)
	}

	sub, err := VerifyToken(testConfig, token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}
	if sub != "user|123" {
		t.Errorf("subject = %q, want user|123", sub)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	valid, _ := CreateToken(testConfig, "user|123", "")
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user|123",
		"iss": testConfig.Issuer,
		"aud": testConfig.Audience,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testConfig.Secret))
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user|123",
		"iss": testConfig.Issuer,
		"aud": testConfig.Audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		cfg   Config
		token string
	}{
		{"wrong secret", Config{Secret: "other", Issuer: "flashlearn", Audience: "flashlearn-api"}, valid},
		{"wrong issuer", Config{Secret: "s3cret", Issuer: "someone-else", Audience: "flashlearn-api"}, valid},
		{"wrong audience", Config{Secret: "s3cret", Issuer: "flashlearn", Audience: "other-api"}, valid},
		{"expired", testConfig, expired},
		{"unsigned", testConfig, noneAlg},
		{"garbage", testConfig, "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.cfg, tt.token); err == nil {
				t.Error("VerifyToken() accepted the token")
			}
		})
	}
}

func TestMissingSecret(t *testing.T) {
	if _, err := CreateToken(Config{}, "u", ""); !errors.Is(err, ErrNoSecret) {
		t.Errorf("CreateToken() error = %v, want ErrNoSecret", err)
	}
	if _, err := VerifyToken(Config{}, "x"); !errors.Is(err, ErrNoSecret) {
		t.Errorf("VerifyToken() error = %v, want ErrNoSecret", err)
	}
}
