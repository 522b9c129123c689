package model

import "errors"

type APIError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrUpstreamUnavailableMessage    = "hotel service is unavailable"
	ErrInvalidLoginOrPasswordMessage = "invalid email or password"
	ErrUserAlreadyExistMessage       = "user already exists"
	ErrNotLoggedInMessage            = "not logged in"
	ErrOrderNotFoundMessage          = "order not found"
	ErrRoomNotFoundMessage           = "room not found"
	ErrNotFoundMessage               = "not found"
	ErrValidationMessage             = "invalid input"
	ErrInvalidEmailFormatMessage     = "invalid email format"
	ErrInvalidEmailCodeMessage       = "invalid email verification code"
	ErrInvalidOldPasswordMessage     = "old password is incorrect"
	ErrRoomCapacityMessage           = "too many guests for this room"
	ErrInvalidRequestBodyMessage     = "invalid request body"
)

var (
	ErrInvalidLoginOrPassword = errors.New(ErrInvalidLoginOrPasswordMessage)
	ErrUserAlreadyExist       = errors.New(ErrUserAlreadyExistMessage)
	ErrNotFound               = errors.New(ErrNotFoundMessage)
	ErrInvalidEmailCode       = errors.New(ErrInvalidEmailCodeMessage)
	ErrInvalidOldPassword     = errors.New(ErrInvalidOldPasswordMessage)
)
