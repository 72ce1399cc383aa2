package session

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/wire"
)

// Transport is the minimal duplex message interface a connection task
// triad drives. A concrete websocket (or other) handler adapts its
// transport to this; cmd/inertia-server has no such adapter (its /ws
// route is a stub). This package has no opinion on framing or upgrade
// handshakes.
type Transport interface {
	ReadMessage() ([]byte, error)
	WriteMessage([]byte) error
}

// RunConnection drives one client's three concurrent tasks (inbound
// dispatch, broadcast forwarder, outbound writer) until any one exits,
// then cancels the rest and applies a SoftDisconnect — grounded on
// spec.md §4.6's per-connection task triad and ws_receiver.rs's message
// dispatch loop. playerID and reconnectKey identify the already-joined
// player (see HandleJoin); RunConnection does not itself perform the
// join handshake.
func RunConnection(ctx context.Context, transport Transport, rm *Room, playerID room.PlayerID, reconnectKey room.ReconnectKey) error {
	unicast := make(chan []byte, unicastChannelCapacity)
	broadcastCh, cancelSub := rm.Subscribe()
	defer cancelSub()

	// Each task cancels the shared context on exit, so a task that
	// returns nil still stops the other two.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { defer cancel(); return runInbound(gctx, transport, rm, playerID, reconnectKey, unicast) })
	g.Go(func() error { defer cancel(); return runForwarder(gctx, broadcastCh, unicast) })
	g.Go(func() error { defer cancel(); return runOutbound(gctx, transport, unicast) })

	err := g.Wait()
	rm.Apply(room.SoftDisconnect{PlayerID: playerID})
	log.Debug().Uint64("player", uint64(playerID)).Err(err).Msg("connection-closed")
	return err
}

// runInbound parses each incoming wire message and dispatches it to
// the room's state machine (or, for ExplicitPing, directly onto the
// unicast channel).
func runInbound(ctx context.Context, transport Transport, rm *Room, playerID room.PlayerID, reconnectKey room.ReconnectKey, unicast chan<- []byte) error {
	for ctx.Err() == nil {
		data, err := transport.ReadMessage()
		if err != nil {
			return err
		}
		msg, err := wire.DecodeClientMessage(data)
		if err != nil {
			log.Warn().Err(err).Uint64("player", uint64(playerID)).Msg("malformed-client-message")
			continue
		}
		if err := dispatchClientMessage(rm, playerID, reconnectKey, msg, unicast); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// dispatchClientMessage translates one wire.ClientMessage into the
// room event (or direct reply) it corresponds to.
func dispatchClientMessage(rm *Room, playerID room.PlayerID, reconnectKey room.ReconnectKey, msg wire.ClientMessage, unicast chan<- []byte) error {
	switch m := msg.(type) {
	case wire.ExplicitPing:
		payload, err := wire.EncodeServerMessage(wire.ExplicitPong{})
		if err != nil {
			return err
		}
		select {
		case unicast <- payload:
			return nil
		default:
			return ErrUnicastFull
		}
	case wire.Rename:
		rm.Apply(room.Connect{PlayerID: playerID, PlayerName: room.PlayerName(m.PlayerName), ReconnectKey: reconnectKey})
	case wire.Join:
		// A Join received mid-connection (e.g. a client re-sending its
		// handshake) is just a Connect/rename, matching join.rs's
		// idempotent re-admission.
		rm.Apply(room.Connect{PlayerID: playerID, PlayerName: room.PlayerName(m.PlayerName), ReconnectKey: room.ReconnectKey(m.PlayerReconnectKey)})
	case wire.StartRound:
		rm.Apply(room.StartRound{})
	case wire.Bid:
		rm.Apply(room.MakeBid{PlayerID: playerID, BidValue: m.BidValue})
	case wire.LockInBid:
		rm.Apply(room.LockInBid{PlayerID: playerID})
	case wire.ReadyBid:
		rm.Apply(room.ReadyBid{PlayerID: playerID})
	case wire.UnreadyBid:
		rm.Apply(room.UnreadyBid{PlayerID: playerID})
	case wire.UpdateSolution:
		rm.Apply(room.UpdateSolution{Solution: m.Solution})
	case wire.GiveUpSolve:
		rm.Apply(room.YieldSolve{PlayerID: playerID})
	}
	return nil
}

// runForwarder relays the room's broadcast stream onto this
// connection's unicast channel. A full unicast channel is fatal per
// spec.md §5, unlike a lagged broadcast subscription, which is not.
func runForwarder(ctx context.Context, broadcastCh <-chan []byte, unicast chan<- []byte) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload, ok := <-broadcastCh:
			if !ok {
				return nil
			}
			select {
			case unicast <- payload:
			default:
				return ErrUnicastFull
			}
		}
	}
}

// runOutbound drains the unicast channel and writes each payload to
// the transport, so broadcasts and direct replies share one writer.
func runOutbound(ctx context.Context, transport Transport, unicast <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload, ok := <-unicast:
			if !ok {
				return nil
			}
			if err := transport.WriteMessage(payload); err != nil {
				return err
			}
		}
	}
}
