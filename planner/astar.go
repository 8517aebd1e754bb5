package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sayotte/pathstate/internal/logging"
)

// Expander tells the search loop where it may go from a waypoint.
type Expander[L comparable, W Waypoint[L]] interface {
	IsGoal(loc L) bool
	// Successors returns one waypoint per reachable neighbor of from, with
	// costs already accumulated along from's path.
	Successors(from W) []W
}

// Result is the outcome of a FindPath run.
type Result[W any] struct {
	Goal       W
	Found      bool
	Expansions int
}

type options struct {
	maxCost float64
	logger  *slog.Logger
}

// Option tunes a FindPath run.
type Option func(*options)

// WithMaxCost drops successors whose PreviousCost is above limit.
func WithMaxCost(limit float64) Option {
	return func(o *options) { o.maxCost = limit }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// FindPath runs A* from start until the expander accepts a closed location or
// the open set runs dry. An exhausted frontier is reported as Found=false
// with a nil error.
//
// state must be fresh; its contents are left in place afterwards so callers
// can inspect what was explored.
func FindPath[M any, L comparable, W Waypoint[L]](
	ctx context.Context,
	state *State[M, L, W],
	start W,
	expander Expander[L, W],
	opts ...Option,
) (Result[W], error) {
	return findPath(ctx, "astar", state, start, expander, opts...)
}

func findPath[M any, L comparable, W Waypoint[L]](
	ctx context.Context,
	name string,
	state *State[M, L, W],
	start W,
	expander Expander[L, W],
	opts ...Option,
) (Result[W], error) {
	o := options{maxCost: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.New("planner")
	}

	var res Result[W]
	startTime := time.Now()
	state.AddOpenWaypoint(start)

	for state.NumOpenWaypoints() > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		current, _ := state.MinOpenWaypoint()
		loc := current.Location()
		if err := state.CloseWaypoint(loc); err != nil {
			return res, fmt.Errorf("%s: %w", name, err)
		}
		res.Expansions++

		if expander.IsGoal(loc) {
			res.Goal = current
			res.Found = true
			break
		}

		for _, next := range expander.Successors(current) {
			if state.IsLocationClosed(next.Location()) {
				continue
			}
			if o.maxCost >= 0 && next.PreviousCost() > o.maxCost {
				continue
			}
			state.AddOpenWaypoint(next)
		}
	}

	var cost float64
	if res.Found {
		cost = res.Goal.PreviousCost()
	}
	o.logger.Info("path search finished",
		slog.String("search", name),
		slog.Duration("elapsed", time.Since(startTime)),
		slog.Int("expansions", res.Expansions),
		slog.Bool("found", res.Found),
		slog.Float64("cost", cost),
	)
	return res, nil
}
