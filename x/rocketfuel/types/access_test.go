package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rocketcandle/x/rocketfuel/types"
)

func TestOperationalStateTransitions(t *testing.T) {
	const admin = "admin"
	s := types.OperationalState{Admin: admin}

	require.NoError(t, s.RequireActive())

	_, err := s.Pause("mallory")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	paused, err := s.Pause(admin)
	require.NoError(t, err)
	require.True(t, paused.Paused)
	require.False(t, s.Paused, "transitions must not mutate the receiver")

	err = paused.RequireActive()
	require.ErrorIs(t, err, types.ErrPaused)
	require.True(t, types.IsStateError(err))

	_, err = paused.Pause(admin)
	require.ErrorIs(t, err, types.ErrPaused)

	_, err = s.Unpause(admin)
	require.ErrorIs(t, err, types.ErrNotPaused)
	require.True(t, types.IsStateError(err))

	active, err := paused.Unpause(admin)
	require.NoError(t, err)
	require.False(t, active.Paused)
}

func TestOperationalStateTransferAdmin(t *testing.T) {
	s := types.OperationalState{Admin: "alice", Paused: true}

	_, err := s.TransferAdmin("bob", "bob")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = s.TransferAdmin("alice", "")
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	next, err := s.TransferAdmin("alice", "bob")
	require.NoError(t, err)
	require.Equal(t, "bob", next.Admin)
	require.True(t, next.Paused)

	require.ErrorIs(t, next.Authorize("alice"), types.ErrUnauthorized)
	require.NoError(t, next.Authorize("bob"))
	require.ErrorIs(t, types.OperationalState{}.Authorize(""), types.ErrUnauthorized)
}
