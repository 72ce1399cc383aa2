// Command inertia-cli is an interactive REPL for solving, generating,
// and inspecting positions outside of a live room — the natural home
// for this module's shell-tooling dependencies
// (github.com/chzyer/readline, github.com/kballard/go-shellquote),
// playing the role the original engine's standalone solver-profile
// batch binary played, but interactive.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"

	"github.com/bluebear94/inertia/corpus"
	"github.com/bluebear94/inertia/generator"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/search"
	"github.com/bluebear94/inertia/session"
)

const defaultMaxDepth = 60

func main() {
	rl, err := readline.New("inertia> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	var current position.Position
	haveCurrent := false

	// registry backs the 'room' commands: a throwaway local room state
	// machine for exercising bidding/solving transitions without a
	// network server, the same role solver-profile's batch binary
	// played for exercising the solver in isolation.
	registry := session.NewRegistry()
	var nextRoomID room.RoomID = 1

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			if err == io.EOF || err == readline.ErrInterrupt {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "generate":
			current = runGenerate(args[1:])
			haveCurrent = true
			fmt.Println(current.WalledBoard.String())
			fmt.Println("board:", current.EncodeB64())
		case "inspect":
			if !haveCurrent {
				fmt.Println("no current position; run 'generate' or 'load <b64>' first")
				continue
			}
			runInspect(current)
		case "load":
			if len(args) < 2 {
				fmt.Println("usage: load <base64-position>")
				continue
			}
			pos, err := position.DecodeB64(args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			current = pos
			haveCurrent = true
			fmt.Println(current.WalledBoard.String())
		case "solve":
			if !haveCurrent {
				fmt.Println("no current position; run 'generate' or 'load <b64>' first")
				continue
			}
			runSolve(current, args[1:])
		case "room":
			runRoom(registry, &nextRoomID, args[1:])
		case "corpus":
			runCorpus(args[1:])
		case "help":
			printHelp()
		case "exit", "quit":
			return
		default:
			fmt.Println("unknown command; try 'help'")
		}
	}
}

func runGenerate(args []string) position.Position {
	strict := len(args) > 0 && args[0] == "--strict"
	var gen *generator.ClassicBoardGenerator
	if strict {
		gen = generator.NewStrictClassicBoardGenerator()
	} else {
		gen = generator.NewClassicBoardGenerator()
	}
	pos, _ := gen.GeneratePosition()
	return pos
}

func runInspect(pos position.Position) {
	fmt.Println(pos.WalledBoard.String())
	fmt.Printf("goal: %d, actors: %v\n", pos.Goal, pos.Actors)
	fmt.Println("board (base64):", pos.EncodeB64())
}

func runSolve(pos position.Position, args []string) {
	maxDepth := defaultMaxDepth
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			maxDepth = d
		}
	}

	mb := moveboard.FromWalledBoard(pos.WalledBoard)
	sol, ok := search.Solve(mb, pos.Goal, pos.Actors, maxDepth)
	if !ok {
		fmt.Println("no solution found within depth", maxDepth)
		return
	}
	fmt.Printf("solution (%d steps): ", len(sol))
	for _, step := range sol {
		fmt.Printf("%d%s ", step.Actor, step.Direction)
	}
	fmt.Println()
	fmt.Println("solution (base64):", sol.EncodeB64())
}

// runRoom handles the 'room' family of subcommands, backed by a local
// session.Registry with no network transport attached — useful for
// exercising the bidding/solving state machine interactively.
func runRoom(registry *session.Registry, nextRoomID *room.RoomID, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: room create | room inspect <id>")
		return
	}
	switch args[0] {
	case "create":
		id := *nextRoomID
		*nextRoomID++
		gen := generator.NewClassicBoardGenerator()
		r := registry.GetOrCreate(id, gen, session.RealClock(), session.NewLocalBroadcaster())
		fmt.Printf("created room %d (state: %s)\n", r.ID(), r.State().Kind)
	case "inspect":
		if len(args) < 2 {
			fmt.Println("usage: room inspect <id>")
			return
		}
		n, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		r, ok := registry.Get(room.RoomID(n))
		if !ok {
			fmt.Println("no such room")
			return
		}
		state := r.State()
		fmt.Printf("room %d: %s\n", r.ID(), state.Kind)
		if meta, ok := state.Meta(); ok {
			fmt.Printf("round %d, %d players\n", meta.RoundNumber, len(meta.PlayerInfo))
		}
	default:
		fmt.Println("usage: room create | room inspect <id>")
	}
}

// runCorpus reports bucket fill levels for a corpus.FileStore
// directory, the REPL equivalent of querying create-board-db's
// progress counters interactively.
func runCorpus(args []string) {
	if len(args) < 1 || args[0] != "stat" {
		fmt.Println("usage: corpus stat [dir]")
		return
	}
	dir := "./corpus-data"
	if len(args) >= 2 {
		dir = args[1]
	}
	store := corpus.NewFileStore(dir, nil)
	for difficulty, want := range corpus.BucketCounts {
		have := 0
		for ordinal := 0; ordinal < want; ordinal++ {
			if _, err := store.Get(difficulty, ordinal); err == nil {
				have++
			} else {
				break
			}
		}
		fmt.Printf("%-8s %d/%d\n", difficulty, have, want)
	}
}

func printHelp() {
	fmt.Println(`commands:
  generate [--strict]   synthesize a fresh classic board
  load <base64>         load a compressed position
  inspect               print the current position
  solve [max-depth]     run the A* solver on the current position
  room create           start a local (non-networked) room
  room inspect <id>     print a local room's current state
  corpus stat [dir]     report corpus bucket fill levels
  exit                  quit`)
}
