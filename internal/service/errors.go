package service

import "errors"

// Ошибки уровня сервисов. Контроллер сопоставляет их с HTTP-статусами.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateID         = errors.New("duplicate id")
	ErrDuplicateName       = errors.New("duplicate name")
	ErrMissingFields       = errors.New("missing required fields")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidStatus       = errors.New("invalid status transition")
	ErrForbidden           = errors.New("operation not allowed for this role")
)
