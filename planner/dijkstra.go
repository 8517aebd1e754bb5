package planner

import "context"

// DijkstraFindPath is FindPath for expanders that produce waypoints with no
// heuristic, i.e. TotalCost == PreviousCost. Ordering then follows the
// accumulated cost alone.
func DijkstraFindPath[M any, L comparable, W Waypoint[L]](
	ctx context.Context,
	state *State[M, L, W],
	start W,
	expander Expander[L, W],
	opts ...Option,
) (Result[W], error) {
	return findPath(ctx, "dijkstra", state, start, expander, opts...)
}
