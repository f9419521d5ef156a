package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"restaurant-intel/internal/analytics"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// NewValidator returns a validator that reports JSON field names and knows
// the "month" tag (English month names).
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, ok := analytics.MonthIndex(fl.Field().String())
		return ok
	})
	return v
}

// ValidationFailure carries field errors from request validation.
type ValidationFailure struct {
	Errors []ValidationError
}

func (f *ValidationFailure) Error() string {
	return "validation failed"
}

// bind parses the JSON body into req and validates it.
func bind(c *fiber.Ctx, v *validator.Validate, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationFailure{Errors: formatValidationErrors(verrs)}
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorHandler renders errors returned by handlers as {"error": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var vf *ValidationFailure
	if errors.As(err, &vf) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":            "Validation failed",
			"validationErrors": vf.Errors,
		})
	}
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func formatValidationErrors(validationErrors validator.ValidationErrors) []ValidationError {
	out := make([]ValidationError, 0, len(validationErrors))

	for _, err := range validationErrors {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "min", "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max", "lte":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		case "uuid":
			message = fmt.Sprintf("%s must be a valid UUID", err.Field())
		case "month":
			message = fmt.Sprintf("%s must be a month name", err.Field())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in %s format", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("%s is invalid", err.Field())
		}

		out = append(out, ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: message,
		})
	}

	return out
}
