package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amalpanikulangara/arreWhatsapp/config"
)

// GenerateAccessToken issues a signed token for an authenticated user.
// ExpiredIn is in seconds.
func GenerateAccessToken(userID string, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.ExpiredIn) * time.Second)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseAccessToken validates the signature and returns the subject user id.
func ParseAccessToken(tokenStr string, cfg *config.Config) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
