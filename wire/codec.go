package wire

import (
	"encoding/json"
	"fmt"
)

// envelope is the `{"type": ..., "content": ...}` shape every message
// serializes to, matching serde's tag/content enum representation.
type envelope struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

// EncodeClientMessage serializes a ClientMessage to its wire envelope.
func EncodeClientMessage(msg ClientMessage) ([]byte, error) {
	content, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("wire: encode client message: %w", err)
	}
	return json.Marshal(envelope{Type: msg.clientMessageType(), Content: contentOrNil(msg, content)})
}

// DecodeClientMessage parses one client→server message.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("wire: decode envelope: %w", err)
	}
	switch env.Type {
	case "ExplicitPing":
		return ExplicitPing{}, nil
	case "Rename":
		var m Rename
		return m, unmarshalContent(env.Content, &m)
	case "Join":
		var m Join
		return m, unmarshalContent(env.Content, &m)
	case "StartRound":
		return StartRound{}, nil
	case "Bid":
		var m Bid
		return m, unmarshalContent(env.Content, &m)
	case "LockInBid":
		return LockInBid{}, nil
	case "ReadyBid":
		return ReadyBid{}, nil
	case "UnreadyBid":
		return UnreadyBid{}, nil
	case "UpdateSolution":
		var m UpdateSolution
		return m, unmarshalContent(env.Content, &m)
	case "GiveUpSolve":
		return GiveUpSolve{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}
}

// EncodeServerMessage serializes a ServerMessage to its wire envelope.
func EncodeServerMessage(msg ServerMessage) ([]byte, error) {
	content, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("wire: encode server message: %w", err)
	}
	return json.Marshal(envelope{Type: msg.serverMessageType(), Content: contentOrNil(msg, content)})
}

// DecodeServerMessage parses one server→client message. Primarily
// useful to test clients.
func DecodeServerMessage(data []byte) (ServerMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("wire: decode envelope: %w", err)
	}
	switch env.Type {
	case "RoomUpdate":
		var m RoomUpdate
		return m, unmarshalContent(env.Content, &m)
	case "CountdownUpdate":
		var m CountdownUpdate
		return m, unmarshalContent(env.Content, &m)
	case "ExplicitPong":
		return ExplicitPong{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessageType, env.Type)
	}
}

// contentOrNil drops the content field entirely for zero-field unit
// structs, so e.g. ExplicitPing encodes as {"type":"ExplicitPing"}
// rather than {"type":"ExplicitPing","content":{}}.
func contentOrNil(msg any, content []byte) json.RawMessage {
	switch msg.(type) {
	case ExplicitPing, StartRound, LockInBid, ReadyBid, UnreadyBid, GiveUpSolve, ExplicitPong:
		return nil
	default:
		return content
	}
}

func unmarshalContent(content json.RawMessage, out any) error {
	if len(content) == 0 {
		return fmt.Errorf("%w: missing content", ErrUnknownMessageType)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("wire: decode content: %w", err)
	}
	return nil
}
