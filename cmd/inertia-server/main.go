// Command inertia-server wires the session runtime, room state
// machine, board generator, and corpus store behind the HTTP surface
// spec.md §6 names as external-collaborator territory
// (/healthcheck, /status, /daily, plus /ws and /join). The websocket
// upgrade and framing themselves are an explicit Non-goal: /ws and
// /join are stubs that answer 501 Not Implemented and do not call into
// session.RunConnection or session.HandleJoin. session.Transport marks
// the boundary a real transport would adapt to, the same boundary
// inertia-async-server/src/main.rs draws between its axum router and
// the engine crate it calls into.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluebear94/inertia/config"
	"github.com/bluebear94/inertia/corpus"
	"github.com/bluebear94/inertia/generator"
	ilog "github.com/bluebear94/inertia/internal/log"
	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/session"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ilog.Init(ilog.ParseLevel(cfg.LogLevel), cfg.PrettyLog)
	logger := ilog.Component("inertia-server")

	registry := session.NewRegistry()
	broadcaster := session.NewLocalBroadcaster()
	clock := session.RealClock()

	var boardGenerator room.PositionGenerator
	if cfg.StrictGoalCorner {
		boardGenerator = generator.NewStrictClassicBoardGenerator()
	} else {
		boardGenerator = generator.NewClassicBoardGenerator()
	}

	corpusStore := corpus.NewFileStore(cfg.CorpusDir, nil)
	dailyReader := corpus.NewDailyReader(corpusStore)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthcheck", handleHealthcheck)
	mux.HandleFunc("/status", handleStatus(registry))
	mux.HandleFunc("/daily", handleDaily(dailyReader))
	mux.HandleFunc("/ws", handleWebsocketStub)
	mux.HandleFunc("/join", handleJoinStub(registry, boardGenerator, clock, broadcaster))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	logger.Info().Str("addr", cfg.ListenAddr).Msg("listening")
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen-failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown-error")
	}
}

func handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleStatus(registry *session.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "{\"rooms\":%d}", registry.Len())
	}
}

func handleDaily(reader *corpus.DailyReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, err := reader.Today()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintf(w, "{\"board\":%q,\"solution\":%q}", entry.Position.EncodeB64(), entry.Solution.EncodeB64())
	}
}

// handleWebsocketStub documents the transport boundary without
// implementing it: the real upgrade handshake and framing are an
// explicit Non-goal per spec.md §1, and pulling in a websocket
// dependency to satisfy a route this module never drives would be
// dead weight.
func handleWebsocketStub(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "websocket transport is not implemented by this module; adapt session.Transport to your framework of choice", http.StatusNotImplemented)
}

// handleJoinStub answers 501 Not Implemented and points at
// session.HandleJoin, the call a real /ws handler would make after a
// successful upgrade. It does not call HandleJoin itself; its
// parameters are unused.
func handleJoinStub(registry *session.Registry, gen room.PositionGenerator, clock session.Clock, broadcaster session.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "join requires an upgraded transport; see session.HandleJoin", http.StatusNotImplemented)
	}
}
