package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	m := NewJWTManager("test-secret-key-12345", time.Hour, 24*time.Hour)
	userID := uuid.New().String()

	token, err := m.GenerateToken(userID, "chef", "chef@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.UserID != userID || claims.Email != "chef@example.com" || claims.Username != "chef" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if m.GetTokenDuration() != time.Hour {
		t.Errorf("GetTokenDuration = %v, want 1h", m.GetTokenDuration())
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	userID := uuid.New().String()

	refresh, err := m.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	access, err := m.GenerateToken(userID, "u", "u@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ValidateToken(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh token accepted as access token: %v", err)
	}
	if _, err := m.ValidateRefreshToken(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access token accepted as refresh token: %v", err)
	}
	claims, err := m.ValidateRefreshToken(refresh)
	if err != nil || claims.UserID != userID {
		t.Errorf("ValidateRefreshToken = %+v, %v", claims, err)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	m := NewJWTManager("secret", time.Hour, time.Hour)
	other := NewJWTManager("other-secret", time.Hour, time.Hour)
	expired := NewJWTManager("secret", -time.Minute, time.Hour)
	userID := uuid.New().String()

	foreign, _ := other.GenerateToken(userID, "u", "u@example.com")
	stale, _ := expired.GenerateToken(userID, "u", "u@example.com")

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: stale},
		{name: "empty", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}

	if _, err := m.GenerateToken("", "u", "u@example.com"); err == nil {
		t.Error("expected an error for an empty user id")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("password stored in clear")
	}
	if !CheckPasswordHash("correct horse", hash) {
		t.Error("CheckPasswordHash rejected the right password")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("CheckPasswordHash accepted the wrong password")
	}
}
