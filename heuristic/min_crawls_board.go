package heuristic

import (
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
)

// MinCrawlsBoard gives, for each square, the minimum number of
// "crawl" moves (a single-cell step that relies on another actor
// already waiting one square over) needed for an isolated actor there
// to reach the goal, as opposed to moves that slide all the way to a
// wall unassisted.
type MinCrawlsBoard struct {
	squares [geometry.NumSquares]Value
}

// Get returns the precomputed value for a single square.
func (b *MinCrawlsBoard) Get(s geometry.Square) Value {
	return b.squares[s]
}

// NewMinCrawlsBoard builds the board by BFS from the goal: reaching
// the frontier along its wall-stopped direction is a full slide, not
// a crawl, so the whole opposite ray is charged no extra crawl;
// reaching it any other way is a one-cell crawl step, charged +1.
func NewMinCrawlsBoard(mb *moveboard.MoveBoard, goal geometry.Square) *MinCrawlsBoard {
	b := &MinCrawlsBoard{}
	for i := range b.squares {
		b.squares[i] = maxValue
	}

	queue := []assistQueueItem{{goal, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if b.squares[cur.square] <= cur.value {
			continue
		}
		b.squares[cur.square] = cur.value
		for _, d := range geometry.Directions {
			if mb.GetUnimpededDestination(cur.square, d) == cur.square {
				for _, s := range mb.GetUnimpededMovementRaySquares(cur.square, d.Opposite()) {
					queue = append(queue, assistQueueItem{s, cur.value})
				}
			} else if adj, ok := cur.square.Adjacent(d); ok {
				queue = append(queue, assistQueueItem{adj, cur.value + 1})
			}
		}
	}
	return b
}
