package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotLoggedIn         = errors.New("Unauthorized access")
	ErrInvalidCredentials  = errors.New("Email or password is incorrect")
	ErrNotFound            = errors.New("Resource not found")
	ErrAccountNotFound     = errors.New("Account not found")
	ErrEmailAlreadyUsed    = errors.New("Email has already been used")
	ErrWrongPassword       = errors.New("Password is incorrect")
	ErrExpiredToken        = errors.New("Token has expired")
	ErrNotAnImage          = errors.New("Uploaded file is not an image")
	ErrConflict            = errors.New("Conflicting record found")
	ErrOrderNotActive      = errors.New("Order is no longer pending")
	ErrProductNotAvailable = errors.New("Product is not available for ordering")
	ErrInvalidOTP          = errors.New("OTP is invalid or has expired")
)

var errorMap = map[error]int{
	ErrInternalServer:      http.StatusInternalServerError,
	ErrClient:              http.StatusBadRequest,
	ErrNotLoggedIn:         http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrNotFound:            http.StatusNotFound,
	ErrAccountNotFound:     http.StatusNotFound,
	ErrEmailAlreadyUsed:    http.StatusConflict,
	ErrWrongPassword:       http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrNotAnImage:          http.StatusBadRequest,
	ErrConflict:            http.StatusConflict,
	ErrOrderNotActive:      http.StatusConflict,
	ErrProductNotAvailable: http.StatusConflict,
	ErrInvalidOTP:          http.StatusBadRequest,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
