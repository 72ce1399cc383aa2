// Package config loads server, solver, and corpus tuning from YAML
// plus environment overrides via github.com/spf13/viper, in the style
// the teacher threads a single *config.Config through every entry
// point (game/rules.go's GameRules.cfg, ai/runner/filters.go's filter,
// puzzles.go's CreatePuzzlesFromGame) rather than scattering flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the tunable knobs. Only cmd/inertia-server loads it, and
// it reads LogLevel, PrettyLog, ListenAddr, CorpusDir and
// StrictGoalCorner; cmd/inertia-cli and cmd/corpus-builder-lambda do
// not load it.
type Config struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `mapstructure:"log_level"`
	// PrettyLog selects the human-readable console writer instead of
	// JSON, for local development.
	PrettyLog bool `mapstructure:"pretty_log"`

	// ListenAddr is the HTTP/websocket listen address (the transport
	// itself is an external collaborator per spec.md §1, but its
	// address is still this process's own concern).
	ListenAddr string `mapstructure:"listen_addr"`

	// BiddingCountdown and BiddingCountdownReset are spec.md §4.6's
	// 30s/60s bidding timers. session.Room uses its own constants of the
	// same values and does not read these fields.
	BiddingCountdown      time.Duration `mapstructure:"bidding_countdown"`
	BiddingCountdownReset time.Duration `mapstructure:"bidding_countdown_reset"`
	// SolvingCountdown is spec.md §4.6's 60s yield timer, likewise not
	// read by session.Room.
	SolvingCountdown time.Duration `mapstructure:"solving_countdown"`

	// SolverMaxDepth is an A* search depth bound. It is not read by any
	// command: cmd/inertia-cli uses its own defaultMaxDepth (60) and the
	// corpus builder its maxSearchDepth (45).
	SolverMaxDepth int `mapstructure:"solver_max_depth"`
	// TranspositionTableMemFraction is a fraction of total system
	// memory, after the teacher's TTableFractionOfMem
	// (endgame/negamax/solver.go). The search package does not read it:
	// it sizes its visited map from github.com/pbnjay/memory with its own
	// fixed divisor (visitedFractionOfMem).
	TranspositionTableMemFraction float64 `mapstructure:"transposition_table_mem_fraction"`

	// CorpusDir is the root directory a corpus.FileStore reads from.
	CorpusDir string `mapstructure:"corpus_dir"`

	// StrictGoalCorner toggles generator.NewStrictClassicBoardGenerator
	// versus the non-strict variant for freshly created rooms.
	StrictGoalCorner bool `mapstructure:"strict_goal_corner"`
}

// Defaults returns the configuration used when no file or environment
// override is present.
func Defaults() Config {
	return Config{
		LogLevel:                      "info",
		PrettyLog:                     false,
		ListenAddr:                    ":8080",
		BiddingCountdown:              30 * time.Second,
		BiddingCountdownReset:         60 * time.Second,
		SolvingCountdown:              60 * time.Second,
		SolverMaxDepth:                60,
		TranspositionTableMemFraction: 0.05,
		CorpusDir:                     "./corpus-data",
		StrictGoalCorner:              false,
	}
}

// Load reads configuration from an optional YAML file at path (skipped
// if empty or missing) layered under INERTIA_-prefixed environment
// variables, layered under Defaults(). This mirrors the teacher's
// config-everywhere style while swapping in viper + yaml.v3, the
// codec pairing the teacher's own go.mod pulls in transitively through
// viper's config-file ecosystem.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("inertia")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("pretty_log", def.PrettyLog)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("bidding_countdown", def.BiddingCountdown)
	v.SetDefault("bidding_countdown_reset", def.BiddingCountdownReset)
	v.SetDefault("solving_countdown", def.SolvingCountdown)
	v.SetDefault("solver_max_depth", def.SolverMaxDepth)
	v.SetDefault("transposition_table_mem_fraction", def.TranspositionTableMemFraction)
	v.SetDefault("corpus_dir", def.CorpusDir)
	v.SetDefault("strict_goal_corner", def.StrictGoalCorner)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
