package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are carried by both access and refresh tokens; refresh tokens only
// set UserID.
type Claims struct {
	UserID    string `json:"userId"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey            []byte
	tokenDuration        time.Duration
	refreshTokenDuration time.Duration
}

func NewJWTManager(secretKey string, tokenDuration, refreshTokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:            []byte(secretKey),
		tokenDuration:        tokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}
}

func (m *JWTManager) GenerateToken(userID, username, email string) (string, error) {
	return m.sign(Claims{
		UserID:    userID,
		Username:  username,
		Email:     email,
		TokenType: tokenTypeAccess,
	}, m.tokenDuration)
}

func (m *JWTManager) GenerateRefreshToken(userID string) (string, error) {
	return m.sign(Claims{
		UserID:    userID,
		TokenType: tokenTypeRefresh,
	}, m.refreshTokenDuration)
}

func (m *JWTManager) GetTokenDuration() time.Duration {
	return m.tokenDuration
}

// ValidateToken accepts access tokens only.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, tokenTypeAccess)
}

func (m *JWTManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.validate(tokenString, tokenTypeRefresh)
}

func (m *JWTManager) sign(claims Claims, ttl time.Duration) (string, error) {
	if claims.UserID == "" {
		return "", errors.New("empty userID passed to token generation")
	}
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

func (m *JWTManager) validate(tokenString, tokenType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("%w: expected %s token", ErrInvalidToken, tokenType)
	}
	return claims, nil
}
