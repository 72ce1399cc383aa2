// Command corpus-builder-lambda bulk-solves freshly generated positions
// into a corpus.FileStore shard directory, playing the role
// create-board-db/src/main.rs's standalone batch binary played against
// a local SQLite file — except run as an AWS Lambda invocation, since a
// single invocation's time budget is too short to fill every bucket in
// BucketCounts. Each invocation solves a bounded batch and, if any
// bucket is still short, re-invokes itself asynchronously with the
// updated per-difficulty counts as its next event, so no single
// invocation needs to run longer than a Lambda's time limit allows.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasvc "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"golang.org/x/sync/errgroup"

	"github.com/bluebear94/inertia/corpus"
	"github.com/bluebear94/inertia/generator"
	ilog "github.com/bluebear94/inertia/internal/log"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/search"
	"github.com/bluebear94/inertia/solution"
)

// batchSize bounds how many accepted positions one invocation writes
// before checking whether to re-invoke itself, keeping each invocation
// well under a Lambda's time limit regardless of how many rejected
// (unsolvable-within-depth) candidates it had to discard to get there.
const batchSize = 200

// maxSearchDepth matches create-board-db's own deepening_search_to_depth
// bound.
const maxSearchDepth = 45

// solverParallelism is the number of candidate positions generated and
// solved concurrently per batch, via golang.org/x/sync/errgroup — the
// same package session/connection.go uses for its per-connection task
// triad, here fanning out A* probes instead.
const solverParallelism = 8

// Event is this function's own invocation payload: the corpus
// directory to fill and the counts already written, so a
// self-continuation picks up where the last invocation left off
// instead of restarting from zero.
type Event struct {
	CorpusDir string                      `json:"corpusDir"`
	Written   map[solution.Difficulty]int `json:"written"`
	// FunctionName is this function's own ARN or name, needed to
	// re-invoke itself; populated from the Lambda context on the first
	// invocation if empty.
	FunctionName string `json:"functionName"`
}

type solvedCandidate struct {
	entry      corpus.Entry
	difficulty solution.Difficulty
}

func handle(ctx context.Context, evt Event) (Event, error) {
	logger := ilog.Component("corpus-builder-lambda")

	if evt.CorpusDir == "" {
		evt.CorpusDir = "/tmp/corpus-data"
	}
	if evt.Written == nil {
		evt.Written = map[solution.Difficulty]int{}
	}
	if evt.FunctionName == "" {
		evt.FunctionName = lambdacontext.FunctionName
	}

	store := corpus.NewFileStore(evt.CorpusDir, corpus.BucketCounts)

	results := make(chan solvedCandidate, solverParallelism)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < solverParallelism; i++ {
		g.Go(func() error {
			return solveWorker(gctx, results)
		})
	}
	go func() {
		_ = g.Wait()
		close(results)
	}()

	written := 0
	for written < batchSize {
		select {
		case <-ctx.Done():
			return evt, ctx.Err()
		case c, ok := <-results:
			if !ok {
				written = batchSize // workers exited early; stop collecting
				break
			}
			if remaining(evt.Written, c.difficulty) <= 0 {
				continue
			}
			ordinal := evt.Written[c.difficulty]
			if err := store.Put(c.difficulty, ordinal, c.entry); err != nil {
				logger.Error().Err(err).Msg("put-failed")
				continue
			}
			evt.Written[c.difficulty] = ordinal + 1
			written++
		}
	}

	if allBucketsFull(evt.Written) {
		logger.Info().Msg("corpus-complete")
		return evt, nil
	}

	if evt.FunctionName != "" {
		if err := reinvoke(ctx, evt); err != nil {
			logger.Error().Err(err).Msg("reinvoke-failed")
			return evt, err
		}
	}
	return evt, nil
}

// solveWorker generates classic boards and solves them until it can
// contribute one accepted candidate, mirroring create-board-db's
// reject-and-retry loop (a generated position with no solution within
// maxSearchDepth is simply discarded, not treated as an error).
func solveWorker(ctx context.Context, out chan<- solvedCandidate) error {
	gen := generator.NewClassicBoardGenerator()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		pos, _ := gen.GeneratePosition()
		mb := moveboard.FromWalledBoard(pos.WalledBoard)
		sol, ok := search.Solve(mb, pos.Goal, pos.Actors, maxSearchDepth)
		if !ok || len(sol) == 0 {
			continue
		}

		difficulty := solution.GetDifficulty(sol)
		select {
		case out <- solvedCandidate{entry: corpus.Entry{Position: pos, Solution: sol}, difficulty: difficulty}:
		case <-ctx.Done():
			return nil
		}
	}
}

func remaining(written map[solution.Difficulty]int, d solution.Difficulty) int {
	return corpus.BucketCounts[d] - written[d]
}

func allBucketsFull(written map[solution.Difficulty]int) bool {
	for d, count := range corpus.BucketCounts {
		if written[d] < count {
			return false
		}
	}
	return true
}

// reinvoke asynchronously invokes this same function with the updated
// progress as its next event, using aws-sdk-go-v2's Lambda client
// rather than the aws-lambda-go runtime package (which only handles
// this invocation's own request/response).
func reinvoke(ctx context.Context, evt Event) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("corpus-builder-lambda: load aws config: %w", err)
	}
	client := lambdasvc.NewFromConfig(cfg)

	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("corpus-builder-lambda: marshal continuation event: %w", err)
	}

	_, err = client.Invoke(ctx, &lambdasvc.InvokeInput{
		FunctionName:   &evt.FunctionName,
		InvocationType: lambdatypes.InvocationTypeEvent, // fire-and-forget async continuation
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("corpus-builder-lambda: invoke continuation: %w", err)
	}
	return nil
}

func main() {
	ilog.Init(ilog.ParseLevel(os.Getenv("LOG_LEVEL")), false)
	lambda.Start(handle)
}
