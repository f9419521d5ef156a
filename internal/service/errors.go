package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrForbidden          = errors.New("restaurant belongs to another owner")
	ErrNoFinancialData    = errors.New("no financial data")
	ErrNoFranchiseGroup   = errors.New("restaurant is not part of a franchise group")
	ErrUnknownIngredient  = errors.New("ingredient does not belong to this restaurant")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRecordNotFound     = errors.New("record not found")
)
