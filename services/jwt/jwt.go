package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/moin-shk/imr-portal/models"
)

const (
	AccessTokenValidity  = 24 * time.Hour
	RefreshTokenValidity = 7 * 24 * time.Hour
)

// GenerateTokenPair issues an access and a refresh token for a user. The
// access token carries the identity claims the session resolver reads.
func GenerateTokenPair(user *models.User, secret string) (string, string, error) {
	accessToken, err := generateToken(jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(AccessTokenValidity).Unix(),
	}, secret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := generateToken(jwt.MapClaims{
		"id":  user.ID,
		"sub": user.Email,
		"exp": time.Now().Add(RefreshTokenValidity).Unix(),
	}, secret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func generateToken(claims jwt.MapClaims, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("empty jwt secret")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAndGetClaims parses and verifies a token, returning its claims.
func ValidateAndGetClaims(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
