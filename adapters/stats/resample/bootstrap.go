// Package resample draws bootstrap resamples and replicates statistics over them.
package resample

import (
	"fmt"
	"math/rand"
	"time"

	"hypokit/domain/core"

	"golang.org/x/sync/errgroup"
)

// Statistic maps one resample to a scalar. It must not retain the slice,
// which is reused between calls.
type Statistic func(resample []float64) float64

// Resampler draws samples with replacement from a caller-supplied source
type Resampler struct {
	rng     *rand.Rand
	workers int
}

// NewResampler creates a resampler. A nil rng is replaced by a clock-seeded one.
func NewResampler(rng *rand.Rand) *Resampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Resampler{rng: rng, workers: 1}
}

// SetWorkers sets how many goroutines Replicate spreads resamples over.
// With a seeded source the output is reproducible for a fixed worker count.
func (r *Resampler) SetWorkers(workers int) {
	if workers < 1 {
		workers = 1
	}
	r.workers = workers
}

// Workers returns the configured worker count
func (r *Resampler) Workers() int {
	return r.workers
}

// Bootstrap returns a resample of the same length drawn uniformly with replacement
func (r *Resampler) Bootstrap(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, core.NewInvalidArgumentError("sample", "cannot be empty")
	}
	out := make([]float64, len(values))
	draw(r.rng, values, out)
	return out, nil
}

// Replicate draws count bootstrap resamples of values and returns stat applied to each
func (r *Resampler) Replicate(values []float64, count int, stat Statistic) ([]float64, error) {
	if len(values) == 0 {
		return nil, core.NewInvalidArgumentError("sample", "cannot be empty")
	}
	if count <= 0 {
		return nil, core.NewInvalidArgumentError("resampleCount", fmt.Sprintf("must be positive, got %d", count))
	}
	if stat == nil {
		return nil, core.NewInvalidArgumentError("statistic", "cannot be nil")
	}

	results := make([]float64, count)
	workers := r.workers
	if workers > count {
		workers = count
	}
	if workers == 1 {
		fill(r.rng, values, results, stat)
		return results, nil
	}

	// Child seeds are drawn up front so the output depends only on the parent
	// stream and the worker count, never on scheduling.
	var g errgroup.Group
	chunk := (count + workers - 1) / workers
	for start := 0; start < count; start += chunk {
		end := min(start+chunk, count)
		child := rand.New(rand.NewSource(r.rng.Int63()))
		part := results[start:end]
		g.Go(func() error {
			fill(child, values, part, stat)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func fill(rng *rand.Rand, values, results []float64, stat Statistic) {
	buf := make([]float64, len(values))
	for i := range results {
		draw(rng, values, buf)
		results[i] = stat(buf)
	}
}

func draw(rng *rand.Rand, values, out []float64) {
	n := len(values)
	for i := range out {
		out[i] = values[rng.Intn(n)]
	}
}
