package session

import (
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/bluebear94/inertia/room"
)

// broadcastChannelCapacity and unicastChannelCapacity are the bounded
// channel sizes spec.md §5 specifies; a lagging broadcast subscriber
// simply misses messages (a subsequent RoomUpdate reconciles), while a
// full unicast channel is fatal to that connection.
const (
	broadcastChannelCapacity = 16
	unicastChannelCapacity   = 16
)

// Broadcaster fans a room's serialized messages out to every
// subscriber's channel. Grounded on inertia-async-server/src/state.rs's
// RoomUtils (a tokio broadcast::Sender per room).
type Broadcaster interface {
	Publish(id room.RoomID, payload []byte) error
	Subscribe(id room.RoomID) (ch <-chan []byte, cancel func())
}

// localBroadcaster is the default single-process Broadcaster: an
// in-memory fan-out over plain Go channels, one registry per room.
type localBroadcaster struct {
	mu   sync.Mutex
	subs map[room.RoomID]map[chan []byte]struct{}
}

// NewLocalBroadcaster returns the default in-process Broadcaster.
func NewLocalBroadcaster() Broadcaster {
	return &localBroadcaster{subs: make(map[room.RoomID]map[chan []byte]struct{})}
}

func (b *localBroadcaster) Publish(id room.RoomID, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[id] {
		select {
		case ch <- payload:
		default:
			// Lagged subscriber; drop and let the next RoomUpdate
			// reconcile, per spec.md §5's backpressure policy.
		}
	}
	return nil
}

func (b *localBroadcaster) Subscribe(id room.RoomID) (<-chan []byte, func()) {
	ch := make(chan []byte, broadcastChannelCapacity)
	b.mu.Lock()
	if b.subs[id] == nil {
		b.subs[id] = make(map[chan []byte]struct{})
	}
	b.subs[id][ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs[id], ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// NatsBroadcaster republishes room updates over NATS subjects, letting
// several server processes share one room's subscriber set — an
// alternate wiring of the domain-stack's nats-io/nats.go dependency,
// swappable in for localBroadcaster without touching Room or the
// per-connection task triad.
type NatsBroadcaster struct {
	conn *nats.Conn
}

// NewNatsBroadcaster wraps an already-connected NATS client.
func NewNatsBroadcaster(conn *nats.Conn) *NatsBroadcaster {
	return &NatsBroadcaster{conn: conn}
}

func natsSubject(id room.RoomID) string {
	return fmt.Sprintf("inertia.room.%d", uint64(id))
}

func (b *NatsBroadcaster) Publish(id room.RoomID, payload []byte) error {
	return b.conn.Publish(natsSubject(id), payload)
}

func (b *NatsBroadcaster) Subscribe(id room.RoomID) (<-chan []byte, func()) {
	ch := make(chan []byte, broadcastChannelCapacity)
	sub, err := b.conn.Subscribe(natsSubject(id), func(msg *nats.Msg) {
		select {
		case ch <- msg.Data:
		default:
		}
	})
	if err != nil {
		close(ch)
		return ch, func() {}
	}
	return ch, func() { _ = sub.Unsubscribe() }
}
