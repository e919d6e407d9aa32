package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer   = http.StatusInternalServerError
	ErrStatusClient           = http.StatusBadRequest
	ErrStatusNotLoggedIn      = http.StatusUnauthorized
	ErrStatusNoPermission     = http.StatusForbidden
	ErrStatusUnauthorized     = http.StatusUnauthorized
	ErrStatusNotFound         = http.StatusNotFound
	ErrStatusEmailAlreadyUsed = http.StatusBadRequest
	ErrStatusConflict         = http.StatusConflict
	ErrBadGateway             = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrInvalidRating           = errors.New("Rating must be between 1 and 5")
	ErrEmptyCheckout           = errors.New("No items selected for checkout")
	ErrPriceChanged            = errors.New("Product price has changed since it was added to the cart")
	ErrTotalMismatch           = errors.New("Submitted total does not match the computed total")
	ErrInvalidOTP              = errors.New("Invalid OTP")
	ErrExpiredOTP              = errors.New("OTP has expired")
	ErrUnverifiedUser          = errors.New("The user is not verified yet")
	ErrNotAnImage              = errors.New("Uploaded file is not an image")
	ErrConflict                = errors.New("Conflicting record found")
	ErrMediaHost               = errors.New("Media host is unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrUnauthorized:            ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusEmailAlreadyUsed,
	ErrInvalidRating:           ErrStatusClient,
	ErrEmptyCheckout:           ErrStatusClient,
	ErrPriceChanged:            ErrStatusConflict,
	ErrTotalMismatch:           ErrStatusClient,
	ErrInvalidOTP:              ErrStatusClient,
	ErrExpiredOTP:              ErrStatusClient,
	ErrUnverifiedUser:          ErrStatusNoPermission,
	ErrNotAnImage:              ErrStatusClient,
	ErrConflict:                ErrStatusConflict,
	ErrMediaHost:               ErrBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
