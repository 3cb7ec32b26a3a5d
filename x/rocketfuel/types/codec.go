package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// The module stores plain Go structs as JSON so no generated protobuf types
// are needed. Every value codec below shares the same encoding.
var (
	ParamsValue           collcodec.ValueCodec[Params]           = jsonValueCodec[Params]{name: "rocketfuel/Params"}
	OperationalStateValue collcodec.ValueCodec[OperationalState] = jsonValueCodec[OperationalState]{name: "rocketfuel/OperationalState"}
	PlayerStatsValue      collcodec.ValueCodec[PlayerStats]      = jsonValueCodec[PlayerStats]{name: "rocketfuel/PlayerStats"}
	SessionRecordValue    collcodec.ValueCodec[SessionRecord]    = jsonValueCodec[SessionRecord]{name: "rocketfuel/SessionRecord"}
	WeeklyBucketValue     collcodec.ValueCodec[WeeklyBucket]     = jsonValueCodec[WeeklyBucket]{name: "rocketfuel/WeeklyBucket"}
)

type jsonValueCodec[T any] struct {
	name string
}

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }

func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }

func (jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string { return c.name }
