package entity

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrTokenExpired        = errors.New("token expired")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrValidation          = errors.New("validation failed")
	ErrIncorrectBody       = errors.New("incorrect request body")
	ErrUnknownTable        = errors.New("unknown table")
	ErrReadOnlyTable       = errors.New("table is read-only")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInvalidTokenScope   = errors.New("invalid token scope")
	ErrTokenUsed           = errors.New("token already used")
	ErrUserNotFoundOrInact = errors.New("user not found or inactive")
	ErrPushTokenRequired   = errors.New("push token required")
)

// IsValidation reports whether err is a client-side input problem.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrIncorrectBody) ||
		errors.Is(err, ErrUnknownTable) ||
		errors.Is(err, ErrReadOnlyTable) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidTokenScope) ||
		errors.Is(err, ErrTokenUsed) ||
		errors.Is(err, ErrUserNotFoundOrInact) ||
		errors.Is(err, ErrPushTokenRequired)
}
