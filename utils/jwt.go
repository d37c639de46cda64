package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewJWTManager(secretKey string, duration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: duration,
	}
}

// GenerateToken signs a token carrying the student's id and email.
func (j *JWTManager) GenerateToken(studentID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    studentID,
		"email": email,
		"exp":   time.Now().Add(j.tokenDuration).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// VerifyToken checks the signature and expiry and returns the embedded identity.
func (j *JWTManager) VerifyToken(tokenStr string) (uint, string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid token claims")
	}

	// JSON numbers decode as float64
	idVal, ok := claims["id"].(float64)
	if !ok || idVal <= 0 {
		return 0, "", fmt.Errorf("invalid id claim")
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return 0, "", fmt.Errorf("invalid email claim")
	}

	return uint(idVal), email, nil
}
