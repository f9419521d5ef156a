package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-intel/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour, time.Hour)
	access, _ := jwtManager.GenerateToken("user-1", "chef", "chef@example.com")
	refresh, _ := jwtManager.GenerateRefreshToken("user-1")

	app := fiber.New()
	app.Get("/private", AuthMiddleware(jwtManager, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUserID).(string))
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: fiber.StatusUnauthorized},
		{name: "bearer access token", header: "Bearer " + access, want: fiber.StatusOK},
		{name: "bare access token", header: access, want: fiber.StatusOK},
		{name: "refresh token", header: "Bearer " + refresh, want: fiber.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", want: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
