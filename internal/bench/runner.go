package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/seqbench/internal/config"
	"github.com/san-kum/seqbench/internal/storage"
)

// maxLineBytes bounds a single input line; large inputs are one line of
// several hundred thousand integers.
const maxLineBytes = 256 << 20

// Recorder persists one median record per operation and line.
type Recorder interface {
	Append(op string, rec storage.Record) error
}

// Summary counts what a run did.
type Summary struct {
	Lines   int
	Failed  int
	Records int
	Elapsed time.Duration
}

func (s *Summary) Add(o Summary) {
	s.Lines += o.Lines
	s.Failed += o.Failed
	s.Records += o.Records
	s.Elapsed += o.Elapsed
}

// LineError is a failure that aborted the measurement of one input line.
type LineError struct {
	Line int
	Op   string
	Err  error
}

func (e *LineError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Op, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type Runner struct {
	cfg     config.Config
	rec     Recorder
	log     zerolog.Logger
	clock   Clock
	factory Factory
	ops     []Operation
	pool    *SamplePool
}

// NewRunner validates cfg and resolves its structure and operations.
func NewRunner(cfg *config.Config, rec Recorder, log zerolog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := NewRegistry()
	factory, err := registry.GetStructure(cfg.Structure)
	if err != nil {
		return nil, err
	}

	ops := make([]Operation, 0, len(cfg.Operations))
	for _, name := range cfg.Operations {
		op, err := registry.GetOperation(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return &Runner{
		cfg:     *cfg,
		rec:     rec,
		log:     log.With().Str("structure", cfg.Structure).Str("label", cfg.Label).Logger(),
		clock:   wallClock{},
		factory: factory,
		ops:     ops,
		pool:    NewSamplePool(cfg.Repetitions),
	}, nil
}

// SetClock replaces the wall clock used for timing.
func (r *Runner) SetClock(c Clock) {
	r.clock = c
}

// Run measures every non-blank line of in. A line that fails to parse or
// whose measurement errors is logged and skipped; only recorder failures and
// cancellation stop the run.
func (r *Runner) Run(ctx context.Context, source string, in io.Reader) (sum Summary, err error) {
	start := time.Now()
	defer func() { sum.Elapsed = time.Since(start) }()

	log := r.log.With().Str("source", source).Logger()

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		select {
		case <-ctx.Done():
			return sum, ctx.Err()
		default:
		}

		sum.Lines++
		records, err := r.measureLine(lineNo, text)
		if err != nil {
			sum.Failed++
			log.Error().Err(err).Int("line", lineNo).Msg("measurement aborted")
			continue
		}

		for i, rec := range records {
			if err := r.rec.Append(r.ops[i].Name, rec); err != nil {
				return sum, fmt.Errorf("record %s: %w", r.ops[i].Name, err)
			}
			sum.Records++
		}
		log.Debug().Int("line", lineNo).Int("size", records[0].InputSize).Msg("line measured")
	}
	if err = sc.Err(); err != nil {
		return sum, fmt.Errorf("read %s: %w", source, err)
	}

	log.Info().
		Int("lines", sum.Lines).
		Int("failed", sum.Failed).
		Int("records", sum.Records).
		Dur("elapsed", time.Since(start)).
		Msg("run complete")
	return sum, nil
}

// measureLine returns one record per configured operation, or the first
// failure. Nothing is recorded for a failed line.
func (r *Runner) measureLine(lineNo int, text string) ([]storage.Record, error) {
	input, err := ParseLine(text)
	if err != nil {
		return nil, &LineError{Line: lineNo, Err: err}
	}

	records := make([]storage.Record, 0, len(r.ops))
	for _, op := range r.ops {
		median, err := r.measure(op, input)
		if err != nil {
			return nil, &LineError{Line: lineNo, Op: op.Name, Err: err}
		}
		records = append(records, storage.Record{
			Label:     r.cfg.Label,
			Median:    median,
			InputSize: len(input),
		})
	}
	return records, nil
}

// measure times op on Repetitions fresh containers seeded with input.
func (r *Runner) measure(op Operation, input []int) (time.Duration, error) {
	samples := r.pool.Get()
	defer r.pool.Put(samples)

	middle := len(input) / 2
	for i := range samples {
		c, err := r.seed(input)
		if err != nil {
			return 0, err
		}

		begin := r.clock.Now()
		err = op.Run(c, middle, r.cfg.InsertValue)
		end := r.clock.Now()
		if err != nil {
			return 0, err
		}
		samples[i] = float64(end.Sub(begin))
	}
	return Median(samples), nil
}

func (r *Runner) seed(input []int) (Container, error) {
	c, err := r.factory(r.cfg.InitialCapacity)
	if err != nil {
		return nil, err
	}
	for _, v := range input {
		c.Append(v)
	}
	return c, nil
}

// ParseLine splits a line on whitespace into integers.
func ParseLine(text string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty line")
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
