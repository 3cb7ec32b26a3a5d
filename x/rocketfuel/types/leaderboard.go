package types

import (
	"fmt"
	"sort"
)

// LeaderboardEntry is one ranked session inside a weekly bucket.
type LeaderboardEntry struct {
	Player    string `json:"player"`
	Score     uint64 `json:"score"`
	Timestamp int64  `json:"timestamp"`
	SessionID uint64 `json:"session_id"`
}

// Outranks orders entries by score, then earlier timestamp, then lower
// session id so that the order is total.
func (e LeaderboardEntry) Outranks(o LeaderboardEntry) bool {
	if e.Score != o.Score {
		return e.Score > o.Score
	}
	if e.Timestamp != o.Timestamp {
		return e.Timestamp < o.Timestamp
	}
	return e.SessionID < o.SessionID
}

// WeeklyBucket holds the best entries of one week, best first.
type WeeklyBucket struct {
	WeekID  uint64             `json:"week_id"`
	Entries []LeaderboardEntry `json:"entries"`
}

// Insert places e in rank order and drops whatever falls past capacity. It
// reports whether e made it into the bucket; a candidate that does not outrank
// the last entry of a full bucket leaves the bucket untouched.
func (b *WeeklyBucket) Insert(e LeaderboardEntry, capacity int) bool {
	if capacity <= 0 {
		return false
	}
	pos := sort.Search(len(b.Entries), func(i int) bool {
		return e.Outranks(b.Entries[i])
	})
	if pos >= capacity {
		return false
	}
	b.Entries = append(b.Entries, LeaderboardEntry{})
	copy(b.Entries[pos+1:], b.Entries[pos:])
	b.Entries[pos] = e
	if len(b.Entries) > capacity {
		b.Entries = b.Entries[:capacity]
	}
	return true
}

// Top returns at most limit entries. A zero limit returns all of them.
func (b WeeklyBucket) Top(limit int) []LeaderboardEntry {
	n := len(b.Entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]LeaderboardEntry, n)
	copy(out, b.Entries[:n])
	return out
}

// Validate checks ordering and size of the bucket.
func (b WeeklyBucket) Validate(capacity int) error {
	if len(b.Entries) > capacity {
		return fmt.Errorf("week %d: %d entries exceed capacity %d", b.WeekID, len(b.Entries), capacity)
	}
	for i := 1; i < len(b.Entries); i++ {
		if !b.Entries[i-1].Outranks(b.Entries[i]) {
			return fmt.Errorf("week %d: entry %d is out of order", b.WeekID, i)
		}
	}
	return nil
}
