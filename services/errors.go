package services

import "errors"

// Business errors surfaced to the HTTP boundary. Handlers pick status
// codes with errors.Is; nothing here is meant to escape as a panic.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateUser       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidPaymentState = errors.New("only successful payments can be refunded")
)
