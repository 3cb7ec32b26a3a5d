package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidRequest      = errorsmod.Register(ModuleName, 1, "invalid request")
	ErrPaused              = errorsmod.Register(ModuleName, 2, "paused")
	ErrValidation          = errorsmod.Register(ModuleName, 3, "session rejected")
	ErrSupplyExceeded      = errorsmod.Register(ModuleName, 4, "max total supply exceeded")
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 5, "insufficient RocketFUEL balance")
	ErrUnauthorized        = errorsmod.Register(ModuleName, 6, "unauthorized")
	ErrNotPaused           = errorsmod.Register(ModuleName, 7, "not paused")
	ErrNotFound            = errorsmod.Register(ModuleName, 8, "not found")
)

// IsStateError reports whether err was caused by the operational state of the
// module rather than by the request itself. Callers may retry these once the
// admin changes the state.
func IsStateError(err error) bool {
	return errors.Is(err, ErrPaused) || errors.Is(err, ErrNotPaused)
}
