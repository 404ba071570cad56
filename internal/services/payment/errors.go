package payment

import "errors"

// Service errors
var (
	ErrInvalidAmount   = errors.New("invalid payment amount")
	ErrOverpayment     = errors.New("amount exceeds outstanding balance")
	ErrAlreadyPaid     = errors.New("assessment is already fully paid")
	ErrInvalidDueDate  = errors.New("due date is required")
	ErrGatewayDeclined = errors.New("online payment was declined")
)
