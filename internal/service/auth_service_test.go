package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service/servicetest"
	"restaurant-intel/pkg/auth"

	"go.uber.org/zap"
)

func newAuthService() (*AuthService, *servicetest.Users, *auth.JWTManager) {
	users := servicetest.NewUsers()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwtManager, zap.NewNop()), users, jwtManager
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	svc, _, jwtManager := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{Username: "chef", Email: "Chef@Example.com ", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.User.Email != "chef@example.com" {
		t.Errorf("email = %q, want normalised", resp.User.Email)
	}
	if resp.TokenType != "Bearer" || resp.ExpiresIn != 3600 {
		t.Errorf("token type/expiry = %s/%d", resp.TokenType, resp.ExpiresIn)
	}
	claims, err := jwtManager.ValidateToken(resp.AccessToken)
	if err != nil || claims.UserID != resp.User.ID {
		t.Fatalf("access token invalid: %v", err)
	}

	if _, err := svc.Register(ctx, &dto.RegisterRequest{Username: "other", Email: "CHEF@example.com", Password: "another-pass"}); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate Register err = %v, want ErrUserExists", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "chef@example.com", password: "s3cret-pass"},
		{name: "case insensitive email", email: "CHEF@EXAMPLE.COM", password: "s3cret-pass"},
		{name: "wrong password", email: "chef@example.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", email: "ghost@example.com", password: "s3cret-pass", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthServiceRefreshToken(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{Username: "chef", Email: "chef@example.com", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.User.ID != resp.User.ID {
		t.Errorf("refreshed user = %s, want %s", refreshed.User.ID, resp.User.ID)
	}

	if _, err := svc.RefreshToken(ctx, resp.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("access token accepted as refresh token: %v", err)
	}
	if _, err := svc.RefreshToken(ctx, "garbage"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage token err = %v", err)
	}
}

func TestAuthServiceStoreFailure(t *testing.T) {
	svc, users, _ := newAuthService()
	users.Err = errors.New("connection reset")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "chef", Email: "chef@example.com", Password: "s3cret-pass"})
	if err == nil || errors.Is(err, ErrUserExists) {
		t.Errorf("Register err = %v, want wrapped store error", err)
	}
}
