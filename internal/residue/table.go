package residue

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicateModulus is returned when a modulus appears more than once in the
// list given to BuildTable.
var ErrDuplicateModulus = errors.New("duplicate modulus")

// Table maps each modulus to its residue set and remembers the order the
// moduli were declared in. It is read-only once BuildTable returns.
type Table struct {
	moduli []int
	sets   map[int]Set
}

// Moduli returns the table's moduli in declaration order.
func (t *Table) Moduli() []int {
	moduli := make([]int, len(t.moduli))
	copy(moduli, t.moduli)
	return moduli
}

// Get returns the residue set computed for m.
func (t *Table) Get(m int) (Set, bool) {
	s, ok := t.sets[m]
	return s, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.moduli)
}

type options struct {
	logger  *zap.Logger
	workers int
}

// Option configures BuildTable.
type Option func(*options)

// WithLogger sets the logger used for per-modulus debug events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers sets how many moduli are computed in parallel.
// Values of 1 or less compute sequentially on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// BuildTable computes the residue set of every modulus and returns them as a
// table in the order given. It fails on the first invalid or duplicate modulus.
func BuildTable(ctx context.Context, moduli []int, opts ...Option) (*Table, error) {
	o := options{logger: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[int]struct{}, len(moduli))
	for _, m := range moduli {
		if _, ok := seen[m]; ok {
			return nil, errors.WithMessagef(ErrDuplicateModulus, "modulus %d", m)
		}
		seen[m] = struct{}{}
	}

	var (
		sets []Set
		err  error
	)
	if o.workers <= 1 {
		sets, err = computeSequential(ctx, moduli, o.logger)
	} else {
		sets, err = computeParallel(ctx, moduli, o.workers, o.logger)
	}
	if err != nil {
		return nil, err
	}

	t := &Table{
		moduli: make([]int, 0, len(moduli)),
		sets:   make(map[int]Set, len(moduli)),
	}
	for i, m := range moduli {
		t.moduli = append(t.moduli, m)
		t.sets[m] = sets[i]
	}

	o.logger.Debug("residue table built", zap.Int("entries", t.Len()))
	return t, nil
}

func computeSequential(ctx context.Context, moduli []int, logger *zap.Logger) ([]Set, error) {
	sets := make([]Set, len(moduli))
	for i, m := range moduli {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := computeLogged(m, logger)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return sets, nil
}

// computeParallel fans the moduli out over a bounded errgroup. Each worker
// writes only its own index, so the result order matches the input.
func computeParallel(ctx context.Context, moduli []int, workers int, logger *zap.Logger) ([]Set, error) {
	sets := make([]Set, len(moduli))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, m := range moduli {
		if gctx.Err() != nil {
			break
		}
		i, m := i, m // per-iteration copies; go directive is below 1.22
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := computeLogged(m, logger)
			if err != nil {
				return err
			}
			sets[i] = s
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early on a cancelled parent without any worker failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

func computeLogged(m int, logger *zap.Logger) (Set, error) {
	s, err := Compute(m)
	if err != nil {
		return Set{}, err
	}
	logger.Debug("computed residues", zap.Int("modulus", m), zap.Int("residues", s.Len()))
	return s, nil
}
