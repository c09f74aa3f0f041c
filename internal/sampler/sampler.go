// Package sampler implements the draw loop at the heart of the tool:
// picking distinct shows at random from a candidate list, choosing one of
// their themes, and handing each result to an output sink.
package sampler

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/rjboas/random-show-themes/internal/output"
	"github.com/rjboas/random-show-themes/internal/show"
)

// Result is the aggregate outcome of one Sample call. Failures are reported
// as counts rather than errors; the caller decides whether any failure is
// fatal for the process.
type Result struct {
	Successes int
	Failures  int
	Exhausted bool
}

// Failed reports whether any iteration failed.
func (r Result) Failed() bool {
	return r.Failures > 0
}

// Sampler draws themes using a single mutable random source. It is not safe
// for concurrent use; each run owns one Sampler.
type Sampler struct {
	rng *rand.Rand
	log *zap.Logger
}

// New returns a Sampler drawing from rng. A nil logger disables logging.
func New(rng *rand.Rand, log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{rng: rng, log: log}
}

// Distinct returns the number of distinct values in the candidate list.
// Duplicate candidate entries count once: from the second draw of a value
// onward it is already visited, so the distinct count is the true upper
// bound on obtainable results.
func Distinct(candidates []uint64) int {
	seen := make(map[uint64]struct{}, len(candidates))
	for _, id := range candidates {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// Sample draws up to target themes from catalog, restricted to the IDs in
// candidates, and emits each pick through sink. No show is picked twice.
//
// Candidates and catalog must be non-empty; the caller validates both
// before invoking Sample.
//
// Shows that are missing from the catalog or have no themes are marked
// visited and skipped without consuming a result slot. When every distinct
// candidate value has been visited and results are still owed, sampling
// stops early with a failure. A sink error fails only its own iteration.
func (s *Sampler) Sample(target int, candidates []uint64, catalog map[uint64]show.Show, sink output.Sink) Result {
	visited := make(map[uint64]struct{}, len(candidates))
	distinct := Distinct(candidates)

	var res Result
	for i := 0; i < target; i++ {
		switch s.draw(candidates, catalog, sink, visited, distinct) {
		case drawSuccess:
			res.Successes++
		case drawFailed:
			res.Failures++
		case drawExhausted:
			res.Failures++
			res.Exhausted = true
		}
		if res.Exhausted {
			break
		}
	}
	return res
}

type drawOutcome int

const (
	drawSuccess drawOutcome = iota
	drawFailed
	drawExhausted
)

// draw performs one result slot's worth of sampling: it retries until a
// fresh candidate yields a theme, the pool is exhausted, or the sink fails.
// The retry loop always terminates: every retry either revisits (bounded by
// the exhaustion check) or grows the visited set toward distinct.
func (s *Sampler) draw(candidates []uint64, catalog map[uint64]show.Show, sink output.Sink, visited map[uint64]struct{}, distinct int) drawOutcome {
	for {
		id := candidates[s.rng.Intn(len(candidates))]

		if _, seen := visited[id]; seen {
			if len(visited) == distinct {
				s.log.Error("not enough results were found")
				return drawExhausted
			}
			continue
		}
		visited[id] = struct{}{}

		sh, ok := catalog[id]
		if !ok {
			s.log.Debug("candidate not present in dictionary", zap.Uint64("id", id))
			continue
		}

		themes := sh.Themes()
		if len(themes) == 0 {
			// Dead end; the show stays visited so it is never retried.
			s.log.Debug("show has no themes", zap.Uint64("id", id), zap.String("title", sh.Title))
			continue
		}

		theme := themes[s.rng.Intn(len(themes))]
		if err := sink.Emit(theme, sh.Title, sh.Classify(theme)); err != nil {
			s.log.Error("failed to write result", zap.Error(err))
			return drawFailed
		}
		return drawSuccess
	}
}
