package usecase

import "errors"

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")

	ErrValidation         = errors.New("request is not valid")
	ErrUnauthorized       = errors.New("user is not authorized")
	ErrInvalidCredentials = errors.New("login or password is wrong")
	ErrForbidden          = errors.New("operation is forbidden for the user")
	ErrNotFound           = errors.New("requested entity is not found")
	ErrConflict           = errors.New("entity state conflicts with the request")
	ErrUpstream           = errors.New("payment gateway request failed")
	ErrStorage            = errors.New("storage request failed")
)
