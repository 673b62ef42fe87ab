package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a key is absent.
var ErrNotFound = errors.New("not found")

// Error classes. Every ledger failure wraps exactly one of them and aborts the
// call with no state written.
var (
	ErrConfiguration        = errors.New("configuration error")
	ErrValidation           = errors.New("validation error")
	ErrAuthorization        = errors.New("authorization error")
	ErrDuplicateFulfillment = errors.New("duplicate fulfillment")
)

var (
	ErrAlreadyInitialized = fmt.Errorf("%w: ledger already initialized", ErrConfiguration)
	ErrNotInitialized     = fmt.Errorf("%w: ledger is not initialized", ErrConfiguration)
	ErrSupplyOverflow     = fmt.Errorf("%w: encrypted supply overflow", ErrConfiguration)

	ErrInvalidAmount  = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidIndex   = fmt.Errorf("%w: invalid account index", ErrValidation)
	ErrInvalidID      = fmt.Errorf("%w: invalid identifier", ErrValidation)
	ErrInvalidAddress = fmt.Errorf("%w: invalid address", ErrValidation)

	ErrUnauthorized = fmt.Errorf("%w: caller is not authorized", ErrAuthorization)

	ErrAlreadyCompleted = fmt.Errorf("%w: already completed", ErrDuplicateFulfillment)
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenRevoked  = errors.New("refresh token revoked")
	ErrTokenExpired  = errors.New("refresh token expired")
	ErrTokenMismatch = errors.New("refresh token mismatch")

	ErrSessionExpired  = fmt.Errorf("%w: login session expired", ErrAuthorization)
	ErrSessionConsumed = fmt.Errorf("%w: login session already used", ErrAuthorization)
	ErrBadSignature    = fmt.Errorf("%w: signature verification failed", ErrAuthorization)
)
