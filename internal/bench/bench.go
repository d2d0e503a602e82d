// Package bench times the search algorithms against each other on a text
// and a set of patterns, and checks how often the selector's pick was the
// fastest one.
package bench

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/coregx/strsearch/engine"
	"github.com/coregx/strsearch/internal/logger"
	"github.com/coregx/strsearch/selector"
	"github.com/coregx/strsearch/simd"
)

// Options controls a benchmark run.
type Options struct {
	// Iterations is the number of timed runs per algorithm and pattern.
	Iterations int

	// Warmup is the number of untimed runs before timing starts.
	Warmup int

	// Verify checks that every algorithm returned the same positions as the
	// automaton oracle.
	Verify bool

	// OnlySelected runs only the selector's pick. A selector without a
	// preference still gets every algorithm.
	OnlySelected bool
}

// DefaultOptions returns the options used by the bench command.
func DefaultOptions() Options {
	return Options{Iterations: 5, Warmup: 1, Verify: true}
}

// Timing is the mean time of one algorithm on one pattern.
type Timing struct {
	Algorithm engine.Algorithm
	Mean      time.Duration
}

// Result is the outcome for a single pattern.
type Result struct {
	Pattern   []byte
	Positions []int
	Decision  selector.Decision
	Timings   []Timing
	Fastest   engine.Algorithm
}

// Compared reports whether more than one algorithm ran, so that Fastest
// says something about the selector.
func (r *Result) Compared() bool {
	return len(r.Timings) > 1
}

// SelectorHit reports whether the selector picked the fastest algorithm.
func (r *Result) SelectorHit() bool {
	return r.Compared() && r.Decision.HasPreference() && r.Decision.Algorithm == r.Fastest
}

// Report is the outcome of a benchmark run.
type Report struct {
	TextLen int
	CPU     string
	Options Options
	Results []Result
}

// Hits returns how many compared patterns the selector got right, and how
// many patterns were compared with a selector preference.
func (r *Report) Hits() (hits, total int) {
	for i := range r.Results {
		res := &r.Results[i]
		if !res.Compared() || !res.Decision.HasPreference() {
			continue
		}
		total++
		if res.SelectorHit() {
			hits++
		}
	}
	return hits, total
}

// Runner runs benchmarks. It is not safe for concurrent use.
type Runner struct {
	opts     Options
	selector selector.Selector
	log      *zap.SugaredLogger
}

// NewRunner returns a Runner that consults s for every pattern.
func NewRunner(opts Options, s selector.Selector) (*Runner, error) {
	if opts.Iterations < 1 {
		return nil, fmt.Errorf("bench: iterations must be at least 1, got %d", opts.Iterations)
	}
	if opts.Warmup < 0 {
		return nil, fmt.Errorf("bench: warmup must not be negative, got %d", opts.Warmup)
	}
	if s == nil {
		s = selector.RunAll{}
	}
	return &Runner{opts: opts, selector: s, log: logger.Named("bench")}, nil
}

// Run times the algorithms on every pattern. It stops between patterns when
// ctx is done.
func (r *Runner) Run(ctx context.Context, text []byte, patterns [][]byte) (*Report, error) {
	if text == nil {
		return nil, engine.ErrInvalidReference
	}

	report := &Report{
		TextLen: len(text),
		CPU:     simd.FeatureString(),
		Options: r.opts,
		Results: make([]Result, 0, len(patterns)),
	}

	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.runPattern(text, pattern)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (r *Runner) runPattern(text, pattern []byte) (Result, error) {
	if pattern == nil {
		return Result{}, engine.ErrInvalidReference
	}

	d := r.selector.Choose(text, pattern)
	res := Result{Pattern: pattern, Decision: d, Fastest: -1}

	algos := engine.Algorithms()
	if r.opts.OnlySelected && d.HasPreference() {
		algos = []engine.Algorithm{d.Algorithm}
	}

	results := make(map[engine.Algorithm][]int, len(algos))
	for _, a := range algos {
		m, err := engine.New(a)
		if err != nil {
			return Result{}, err
		}
		mean, pos := r.measure(m, text, pattern)
		results[a] = pos
		res.Timings = append(res.Timings, Timing{Algorithm: a, Mean: mean})

		r.log.Debugw("timed",
			logger.FieldAlgorithm, a.String(),
			logger.FieldPatternLen, len(pattern),
			logger.FieldCount, len(pos),
			logger.FieldDurationNS, mean.Nanoseconds())

		if res.Fastest < 0 || mean < r.meanOf(res.Timings, res.Fastest) {
			res.Fastest = a
		}
	}

	res.Positions = results[algos[0]]
	if r.opts.Verify {
		want, err := Oracle(text, pattern)
		if err != nil {
			return Result{}, err
		}
		if err := verify(pattern, want, algos, results); err != nil {
			return Result{}, err
		}
	}

	r.log.Infow("pattern done",
		logger.FieldPatternLen, len(pattern),
		logger.FieldAlgorithm, res.Fastest.String(),
		logger.FieldRule, d.Rule.String(),
		logger.FieldCount, len(res.Positions))
	return res, nil
}

// measure runs m Warmup times untimed, then Iterations times timed, and returns
// the mean duration and the positions of the last run.
func (r *Runner) measure(m engine.Matcher, text, pattern []byte) (time.Duration, []int) {
	var pos []int
	for i := 0; i < r.opts.Warmup; i++ {
		pos = m.FindAll(text, pattern)
	}

	start := time.Now()
	for i := 0; i < r.opts.Iterations; i++ {
		pos = m.FindAll(text, pattern)
	}
	return time.Since(start) / time.Duration(r.opts.Iterations), pos
}

func (r *Runner) meanOf(timings []Timing, a engine.Algorithm) time.Duration {
	for _, t := range timings {
		if t.Algorithm == a {
			return t.Mean
		}
	}
	return 0
}
