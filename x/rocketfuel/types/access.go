package types

import (
	errorsmod "cosmossdk.io/errors"
)

// OperationalState is the pause switch together with the identity allowed to
// flip it. Transitions are pure: they return the next state and never mutate
// the receiver.
type OperationalState struct {
	Paused bool   `json:"paused"`
	Admin  string `json:"admin"`
}

// Authorize returns ErrUnauthorized unless caller is the admin.
func (s OperationalState) Authorize(caller string) error {
	if caller == "" || caller != s.Admin {
		return errorsmod.Wrapf(ErrUnauthorized, "%s is not the admin", caller)
	}
	return nil
}

// RequireActive fails closed while the module is paused.
func (s OperationalState) RequireActive() error {
	if s.Paused {
		return errorsmod.Wrap(ErrPaused, "rocketfuel is paused")
	}
	return nil
}

// Pause moves an active module to paused. Pausing twice is an error.
func (s OperationalState) Pause(caller string) (OperationalState, error) {
	if err := s.Authorize(caller); err != nil {
		return s, err
	}
	if s.Paused {
		return s, errorsmod.Wrap(ErrPaused, "already paused")
	}
	s.Paused = true
	return s, nil
}

// Unpause moves a paused module back to active.
func (s OperationalState) Unpause(caller string) (OperationalState, error) {
	if err := s.Authorize(caller); err != nil {
		return s, err
	}
	if !s.Paused {
		return s, errorsmod.Wrap(ErrNotPaused, "already active")
	}
	s.Paused = false
	return s, nil
}

// TransferAdmin hands the admin role to newAdmin. Allowed while paused.
func (s OperationalState) TransferAdmin(caller, newAdmin string) (OperationalState, error) {
	if err := s.Authorize(caller); err != nil {
		return s, err
	}
	if newAdmin == "" {
		return s, errorsmod.Wrap(ErrInvalidRequest, "new admin required")
	}
	s.Admin = newAdmin
	return s, nil
}
