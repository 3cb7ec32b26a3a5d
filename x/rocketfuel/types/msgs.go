package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgSubmitSession reports a finished game session for Player.
type MsgSubmitSession struct {
	Player           string `json:"player"`
	Score            uint64 `json:"score"`
	Level            uint64 `json:"level"`
	GameTime         uint64 `json:"game_time"`
	EnemiesDestroyed uint64 `json:"enemies_destroyed"`
	RocketsUsed      uint64 `json:"rockets_used"`
}

// Session returns the reported tuple.
func (m MsgSubmitSession) Session() SessionInput {
	return SessionInput{
		Score:            m.Score,
		Level:            m.Level,
		GameTime:         m.GameTime,
		EnemiesDestroyed: m.EnemiesDestroyed,
		RocketsUsed:      m.RocketsUsed,
	}
}

// MsgSubmitSessionResponse carries the completion record of an accepted session.
type MsgSubmitSessionResponse struct {
	Record       SessionRecord `json:"record"`
	Ranked       bool          `json:"ranked"`
	StateVersion uint64        `json:"state_version"`
}

type MsgPurchaseRevive struct {
	Player string `json:"player"`
}

type MsgPurchaseReviveResponse struct {
	Cost    math.Int `json:"cost"`
	Balance math.Int `json:"balance"`
}

type MsgPause struct {
	Admin string `json:"admin"`
}

type MsgPauseResponse struct{}

type MsgUnpause struct {
	Admin string `json:"admin"`
}

type MsgUnpauseResponse struct{}

type MsgTransferAdmin struct {
	Admin    string `json:"admin"`
	NewAdmin string `json:"new_admin"`
}

type MsgTransferAdminResponse struct{}

// MsgUpdateParams replaces the module parameters. Admin only.
type MsgUpdateParams struct {
	Admin  string `json:"admin"`
	Params Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgTransfer moves RocketFUEL between two accounts.
type MsgTransfer struct {
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgTransferResponse struct{}

// MsgBurn destroys RocketFUEL held by Sender, lowering the total supply.
type MsgBurn struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgBurnResponse struct{}

// MsgServer is the write surface of the module.
type MsgServer interface {
	SubmitSession(context.Context, *MsgSubmitSession) (*MsgSubmitSessionResponse, error)
	PurchaseRevive(context.Context, *MsgPurchaseRevive) (*MsgPurchaseReviveResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Unpause(context.Context, *MsgUnpause) (*MsgUnpauseResponse, error)
	TransferAdmin(context.Context, *MsgTransferAdmin) (*MsgTransferAdminResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgBurnResponse, error)
}
