package grid

import (
	"context"
	"math"

	"github.com/sayotte/pathstate/planner"
)

// Pathfinder expands grid waypoints for the planner. Moving into a cell costs
// the length of the step (1 straight, sqrt(2) diagonal) plus the cell's value;
// the estimate to the finish is the straight-line distance, which never
// overshoots because cell values are not negative.
type Pathfinder struct {
	m *Map
}

func NewPathfinder(m *Map) *Pathfinder {
	return &Pathfinder{m: m}
}

func (p *Pathfinder) IsGoal(loc Location) bool {
	return loc == p.m.Finish()
}

// Start returns the zero-cost waypoint at the map's start cell.
func (p *Pathfinder) Start() *Waypoint {
	start := p.m.Start()
	return NewWaypoint(start, nil, 0, distance(start, p.m.Finish()))
}

func (p *Pathfinder) Successors(from *Waypoint) []*Waypoint {
	out := make([]*Waypoint, 0, 8)
	here := from.Location()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			next := Location{X: here.X + dx, Y: here.Y + dy}
			if !p.m.Passable(next) {
				continue
			}
			prevCost := from.PreviousCost() + distance(here, next) + float64(p.m.CellValue(next))
			out = append(out, NewWaypoint(next, from, prevCost, distance(next, p.m.Finish())))
		}
	}
	return out
}

// Solution is what ComputePath found. Goal is nil when the finish could not be
// reached within the map's budget.
type Solution struct {
	Goal       *Waypoint
	Expansions int
	Explored   int
}

func (s Solution) Found() bool { return s.Goal != nil }

// ComputePath searches m from its start to its finish. A positive MaxCost on
// the map bounds the accumulated cost of any path considered.
func ComputePath(ctx context.Context, m *Map, opts ...planner.Option) (Solution, error) {
	state, err := planner.NewState[*Map, Location, *Waypoint](m)
	if err != nil {
		return Solution{}, err
	}
	if limit := m.MaxCost(); limit > 0 {
		opts = append([]planner.Option{planner.WithMaxCost(limit)}, opts...)
	}

	pf := NewPathfinder(m)
	res, err := planner.FindPath[*Map, Location, *Waypoint](ctx, state, pf.Start(), pf, opts...)
	if err != nil {
		return Solution{}, err
	}
	sol := Solution{
		Expansions: res.Expansions,
		Explored:   state.NumOpenWaypoints() + state.NumClosedWaypoints(),
	}
	if res.Found {
		sol.Goal = res.Goal
	}
	return sol, nil
}

func distance(a, b Location) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
