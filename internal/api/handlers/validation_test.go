package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"restaurant-intel/internal/dto"
	"restaurant-intel/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func TestValidatorMonthTag(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		month string
		ok    bool
	}{
		{month: "January", ok: true},
		{month: " december ", ok: true},
		{month: "SEPTEMBER", ok: true},
		{month: "Sept", ok: false},
		{month: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			err := v.Struct(dto.CreateMonthlyDataRequest{Month: tt.month, Year: 2024})
			if (err == nil) != tt.ok {
				t.Errorf("Month %q: err = %v, want ok=%v", tt.month, err, tt.ok)
			}
		})
	}
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Struct(dto.CreateWasteLogRequest{ItemName: "Milk", Quantity: 1, Unit: "l", Reason: "spoiled", Date: "2024/01/01"})

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("err = %v, want validation errors", err)
	}
	got := formatValidationErrors(verrs)
	if len(got) != 1 || got[0].Field != "date" || got[0].Tag != "datetime" {
		t.Errorf("got %+v, want a single datetime error on date", got)
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: service.ErrRestaurantNotFound, want: fiber.StatusNotFound},
		{name: "no data", err: service.ErrNoFinancialData, want: fiber.StatusNotFound},
		{name: "missing record", err: service.ErrRecordNotFound, want: fiber.StatusNotFound},
		{name: "forbidden", err: service.ErrForbidden, want: fiber.StatusForbidden},
		{name: "invalid", err: service.ErrInvalidInput, want: fiber.StatusBadRequest},
		{name: "unknown ingredient", err: service.ErrUnknownIngredient, want: fiber.StatusBadRequest},
		{name: "no group", err: service.ErrNoFranchiseGroup, want: fiber.StatusBadRequest},
		{name: "upstream", err: errors.New("connection refused"), want: fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, zap.NewNop(), "Failed", tt.err)
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
