// Package sweep verifies round trips over whole number ranges, in parallel.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jmcpheron/ancient-number-converter/internal/logging"
	"github.com/jmcpheron/ancient-number-converter/pkg/numeral"
)

// chunkSize is the number of integers one worker verifies per task.
const chunkSize = 10_000

// maxFailures caps the failures kept per system.
const maxFailures = 10

// Options selects what to sweep.
type Options struct {
	// Systems defaults to every registered system.
	Systems []numeral.ID

	// Range narrows each system's range; nil sweeps the full range. It is
	// clamped to each system's own range.
	Range *numeral.Range

	// Workers defaults to GOMAXPROCS.
	Workers int

	Logger *slog.Logger
}

// Failure is one number whose round trip did not hold.
type Failure struct {
	Number int    `json:"number"`
	Error  string `json:"error"`
}

// SystemReport is the outcome for one system.
type SystemReport struct {
	System   numeral.ID    `json:"system"`
	Range    numeral.Range `json:"range"`
	Checked  int           `json:"checked"`
	Failed   int           `json:"failed"`
	Failures []Failure     `json:"failures"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Passed reports whether every checked number round-tripped.
func (r SystemReport) Passed() bool {
	return r.Failed == 0
}

// Report is the outcome of a sweep.
type Report struct {
	Systems []SystemReport `json:"systems"`
}

// Passed reports whether every system passed.
func (r Report) Passed() bool {
	for _, s := range r.Systems {
		if !s.Passed() {
			return false
		}
	}
	return true
}

// Run sweeps each selected system in turn, splitting its range across
// workers. It stops early only when ctx is cancelled.
func Run(ctx context.Context, opts Options) (Report, error) {
	ids := opts.Systems
	if len(ids) == 0 {
		ids = numeral.IDs()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var report Report
	for _, id := range ids {
		s, ok := numeral.Lookup(string(id))
		if !ok {
			return report, fmt.Errorf("unknown system %q", id)
		}
		r, ok := clamp(s.Range, opts.Range)
		if !ok {
			logger.Debug("range outside system, skipping", "system", id)
			continue
		}

		sr, err := sweepSystem(ctx, s, r, workers)
		if err != nil {
			return report, fmt.Errorf("sweep %s: %w", id, err)
		}
		logger.Info("sweep finished",
			"system", id, "checked", sr.Checked, "failed", sr.Failed, "elapsed", sr.Elapsed)
		report.Systems = append(report.Systems, sr)
	}
	return report, nil
}

func sweepSystem(ctx context.Context, s *numeral.System, r numeral.Range, workers int) (SystemReport, error) {
	start := time.Now()
	sr := SystemReport{System: s.ID, Range: r, Failures: []Failure{}}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := r.Min; lo <= r.Max; lo += chunkSize {
		hi := min(lo+chunkSize-1, r.Max)
		g.Go(func() error {
			var failures []Failure
			failed := 0
			for n := lo; n <= hi; n++ {
				if v := s.Verify(n); !v.Passed {
					failed++
					if len(failures) < maxFailures {
						failures = append(failures, Failure{Number: n, Error: v.Error})
					}
				}
			}

			mu.Lock()
			defer mu.Unlock()
			sr.Checked += hi - lo + 1
			sr.Failed += failed
			sr.Failures = append(sr.Failures, failures...)
			return gCtx.Err()
		})
		if gCtx.Err() != nil {
			break
		}
	}

	if err := g.Wait(); err != nil {
		return sr, err
	}
	slices.SortFunc(sr.Failures, func(a, b Failure) int { return a.Number - b.Number })
	if len(sr.Failures) > maxFailures {
		sr.Failures = sr.Failures[:maxFailures]
	}
	sr.Elapsed = time.Since(start)
	return sr, nil
}

// clamp intersects a system range with an optional requested range.
func clamp(system numeral.Range, want *numeral.Range) (numeral.Range, bool) {
	if want == nil {
		return system, true
	}
	r := numeral.Range{Min: max(system.Min, want.Min), Max: min(system.Max, want.Max)}
	return r, r.Min <= r.Max
}
