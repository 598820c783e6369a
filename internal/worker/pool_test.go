package worker_test

import (
	"sort"
	"testing"

	"github.com/unchess/sanmove/internal/chess"
	"github.com/unchess/sanmove/internal/notation"
	"github.com/unchess/sanmove/internal/testutil"
	"github.com/unchess/sanmove/internal/worker"
)

func decodeItem(item worker.WorkItem) worker.Result {
	mv, err := notation.Decode(item.Token)
	return worker.Result{Index: item.Index, Move: mv, Err: err}
}

func TestPoolDecodesAllTokens(t *testing.T) {
	tokens := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "O-O", "bogus", "Qh5+"}

	pool := worker.NewPool(decodeItem, worker.WithWorkers(4), worker.WithBufferSize(2))
	pool.Start()

	go func() {
		for i, tok := range tokens {
			pool.Submit(worker.WorkItem{Token: tok, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(tokens))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	if len(results) != len(tokens) {
		t.Fatalf("got %d results, want %d", len(results), len(tokens))
	}
	for i, res := range results {
		testutil.AssertEqual(t, res.Index, i)
		if tokens[i] == "bogus" {
			testutil.AssertError(t, res.Err, "token %q", tokens[i])
			continue
		}
		testutil.AssertNoError(t, res.Err, "token %q", tokens[i])
	}

	// Spot-check one decoded move survived the trip
	testutil.AssertEqual(t, results[6].Move, notation.AmbiguousMove(notation.Castle{Side: chess.KingSide}))
}

func TestPoolDefaults(t *testing.T) {
	pool := worker.NewPool(decodeItem)
	testutil.AssertEqual(t, pool.NumWorkers(), 1)

	pool = worker.NewPool(decodeItem, worker.WithWorkers(0))
	testutil.AssertEqual(t, pool.NumWorkers(), 1, "non-positive worker counts fall back to 1")
}

func TestPoolStop(t *testing.T) {
	pool := worker.NewPool(decodeItem, worker.WithBufferSize(1))
	pool.Start()

	testutil.AssertFalse(t, pool.IsStopped())
	pool.Stop()
	testutil.AssertTrue(t, pool.IsStopped())
	testutil.AssertFalse(t, pool.TrySubmit(worker.WorkItem{Token: "e4"}), "TrySubmit after Stop")

	pool.Close()
	for range pool.Results() {
		t.Error("stopped pool produced a result")
	}
}
