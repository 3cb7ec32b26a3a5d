package types

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// Validate checks the genesis state against the ledger invariants. Accounts
// are compared by their decoded bytes; the bech32 prefix is checked when the
// state is imported.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	totalMinted := gs.TotalMinted
	if totalMinted.IsNil() {
		totalMinted = math.ZeroInt()
	}
	if totalMinted.IsNegative() {
		return fmt.Errorf("total_minted cannot be negative")
	}
	if totalMinted.GT(MaxTotalSupply) {
		return fmt.Errorf("total_minted %s exceeds max total supply %s", totalMinted, MaxTotalSupply)
	}

	sum := math.ZeroInt()
	seenBalances := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		key, err := accountKey("balances", b.Address)
		if err != nil {
			return err
		}
		if _, ok := seenBalances[key]; ok {
			return fmt.Errorf("balances: duplicate address %q", b.Address)
		}
		seenBalances[key] = struct{}{}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return fmt.Errorf("balances: invalid amount for %q", b.Address)
		}
		sum = sum.Add(b.Amount)
	}
	if !sum.Equal(totalMinted) {
		return fmt.Errorf("balances sum %s does not match total_minted %s", sum, totalMinted)
	}

	stats := make(map[string]PlayerStats, len(gs.Players))
	names := make(map[string]string, len(gs.Players))
	for _, p := range gs.Players {
		key, err := accountKey("players", p.Player)
		if err != nil {
			return err
		}
		if _, ok := stats[key]; ok {
			return fmt.Errorf("players: duplicate player %q", p.Player)
		}
		stats[key] = p.Stats
		names[key] = p.Player
	}

	replayed := make(map[string]PlayerStats, len(gs.Players))
	seenSessions := make(map[uint64]struct{}, len(gs.Sessions))
	for _, s := range gs.Sessions {
		if _, ok := seenSessions[s.ID]; ok {
			return fmt.Errorf("sessions: duplicate id %d", s.ID)
		}
		seenSessions[s.ID] = struct{}{}
		if s.ID >= gs.NextSessionID {
			return fmt.Errorf("sessions: id %d not below next_session_id %d", s.ID, gs.NextSessionID)
		}
		key, err := accountKey("sessions", s.Player)
		if err != nil {
			return err
		}
		if _, ok := stats[key]; !ok {
			return fmt.Errorf("sessions: session %d belongs to unknown player %q", s.ID, s.Player)
		}
		if s.Reward.IsNil() || s.Reward.IsNegative() {
			return fmt.Errorf("sessions: session %d has invalid reward", s.ID)
		}
		acc, ok := replayed[key]
		if !ok {
			acc = NewPlayerStats()
		}
		replayed[key] = acc.Record(s)
	}
	for key, want := range stats {
		got, ok := replayed[key]
		if !ok {
			got = NewPlayerStats()
		}
		if want.TotalTokensEarned.IsNil() {
			want.TotalTokensEarned = math.ZeroInt()
		}
		if got.TotalGames != want.TotalGames || got.BestScore != want.BestScore || !got.TotalTokensEarned.Equal(want.TotalTokensEarned) {
			return fmt.Errorf("players: stats of %q do not match its sessions", names[key])
		}
	}

	seenWeeks := make(map[uint64]struct{}, len(gs.Leaderboards))
	for _, b := range gs.Leaderboards {
		if _, ok := seenWeeks[b.WeekID]; ok {
			return fmt.Errorf("leaderboards: duplicate week %d", b.WeekID)
		}
		seenWeeks[b.WeekID] = struct{}{}
		if err := b.Validate(MaxLeaderboardSize); err != nil {
			return err
		}
	}

	return nil
}

// accountKey decodes a bech32 address so that every spelling of one account
// maps to the same key.
func accountKey(field, addr string) (string, error) {
	if addr == "" {
		return "", fmt.Errorf("%s: address required", field)
	}
	_, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil || len(bz) == 0 {
		return "", fmt.Errorf("%s: invalid address %q", field, addr)
	}
	return string(bz), nil
}
