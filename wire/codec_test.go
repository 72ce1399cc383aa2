package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/solution"
)

func TestClientMessageRoundTrip(t *testing.T) {
	easiest := solution.Easiest
	cases := []ClientMessage{
		ExplicitPing{},
		Rename{PlayerName: "alice"},
		Join{PlayerName: "alice", PlayerID: 1, PlayerReconnectKey: 42, RoomID: 7, MinDifficulty: &easiest},
		StartRound{},
		Bid{BidValue: 3},
		LockInBid{},
		ReadyBid{},
		UnreadyBid{},
		UpdateSolution{Solution: solution.Solution{{Actor: 0, Direction: geometry.Up}}},
		GiveUpSolve{},
	}
	for _, msg := range cases {
		data, err := EncodeClientMessage(msg)
		require.NoError(t, err)
		decoded, err := DecodeClientMessage(data)
		require.NoError(t, err)
		assert.Equal(t, msg, decoded)
	}
}

func TestServerMessageRoundTrip(t *testing.T) {
	cases := []ServerMessage{
		CountdownUpdate{ServerTimeLeftMillis: 15000},
		ExplicitPong{},
	}
	for _, msg := range cases {
		data, err := EncodeServerMessage(msg)
		require.NoError(t, err)
		decoded, err := DecodeServerMessage(data)
		require.NoError(t, err)
		assert.Equal(t, msg, decoded)
	}
}

func TestUnitMessageOmitsContent(t *testing.T) {
	data, err := EncodeClientMessage(ExplicitPing{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ExplicitPing"}`, string(data))
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := DecodeClientMessage([]byte(`{"type":"Teleport","content":{}}`))
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}

func TestDecodeMissingContent(t *testing.T) {
	_, err := DecodeClientMessage([]byte(`{"type":"Bid"}`))
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}
