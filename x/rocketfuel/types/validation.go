package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SessionInput is the raw result tuple reported by the game client.
type SessionInput struct {
	Score            uint64 `json:"score"`
	Level            uint64 `json:"level"`
	GameTime         uint64 `json:"game_time"` // seconds
	EnemiesDestroyed uint64 `json:"enemies_destroyed"`
	RocketsUsed      uint64 `json:"rockets_used"`
}

// sessionCheck rejects a session for a single reason.
type sessionCheck func(p Params, in SessionInput) error

// sessionChecks run in order; the first failure is reported.
var sessionChecks = []sessionCheck{
	checkGameTime,
	checkScoreRate,
	checkWellFormed,
}

// ValidateSession decides whether a reported session is plausible enough to be
// rewarded. It never touches state, so it can be called ahead of any write.
func ValidateSession(p Params, in SessionInput) error {
	for _, check := range sessionChecks {
		if err := check(p, in); err != nil {
			return err
		}
	}
	return nil
}

func checkGameTime(p Params, in SessionInput) error {
	if in.GameTime < p.MinGameTime {
		return errorsmod.Wrapf(ErrValidation, "game too short: %ds < %ds", in.GameTime, p.MinGameTime)
	}
	return nil
}

func checkScoreRate(p Params, in SessionInput) error {
	if in.GameTime == 0 {
		return errorsmod.Wrap(ErrValidation, "game too short: zero game time")
	}
	if rate := in.Score / in.GameTime; rate > p.MaxScorePerSecond {
		return errorsmod.Wrapf(ErrValidation, "suspicious score: %d points/s exceeds %d", rate, p.MaxScorePerSecond)
	}
	return nil
}

func checkWellFormed(p Params, in SessionInput) error {
	switch {
	case in.Level < 1:
		return errorsmod.Wrap(ErrValidation, "malformed session: level must be at least 1")
	case in.Level > p.MaxLevel:
		return errorsmod.Wrapf(ErrValidation, "malformed session: level %d exceeds %d", in.Level, p.MaxLevel)
	case in.Score > p.MaxScore:
		return errorsmod.Wrapf(ErrValidation, "malformed session: score %d exceeds %d", in.Score, p.MaxScore)
	}
	return nil
}
