package model

import (
	"errors"
	"fmt"
)

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrRiderAlreadyExistMessage      = "rider already exists"
	ErrAssignmentNotFoundMessage     = "assignment not found"
	ErrAssignmentInvalidMessage      = "invalid assignment"
	ErrNoActiveOrderMessage          = "no active order"
	ErrOrderAlreadyActiveMessage     = "order already active"
	ErrInvalidOTPMessage             = "invalid otp"
	ErrInvalidLocationMessage        = "invalid location"
	ErrSessionClosedMessage          = "rider session closed"
	ErrNoDeliveriesMessage           = "no deliveries found"
)

var (
	ErrInvalidLoginOrPassword = errors.New(ErrInvalidLoginOrPasswordMessage)
	ErrRiderAlreadyExist      = errors.New(ErrRiderAlreadyExistMessage)

	ErrAssignmentNotFound = errors.New(ErrAssignmentNotFoundMessage)
	ErrAssignmentInvalid  = errors.New(ErrAssignmentInvalidMessage)
	ErrNoActiveOrder      = errors.New(ErrNoActiveOrderMessage)
	ErrOrderAlreadyActive = errors.New(ErrOrderAlreadyActiveMessage)
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrSessionClosed      = errors.New(ErrSessionClosedMessage)
)

// TransitionError - переход из текущего статуса заказа не разрешён
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
