package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sayotte/pathstate/internal/logging"
)

// graphWaypoint remembers how it was reached so tests can rebuild the route.
type graphWaypoint struct {
	node  string
	prev  *graphWaypoint
	cost  float64
	total float64
}

func (w *graphWaypoint) Location() string      { return w.node }
func (w *graphWaypoint) PreviousCost() float64 { return w.cost }
func (w *graphWaypoint) TotalCost() float64    { return w.total }

func (w *graphWaypoint) route() []string {
	var out []string
	for cur := w; cur != nil; cur = cur.prev {
		out = append([]string{cur.node}, out...)
	}
	return out
}

type testGraph struct {
	edges    map[string]map[string]float64
	estimate map[string]float64
	goal     string
}

func (g *testGraph) IsGoal(loc string) bool { return loc == g.goal }

func (g *testGraph) Successors(from *graphWaypoint) []*graphWaypoint {
	var out []*graphWaypoint
	for dst, c := range g.edges[from.node] {
		cost := from.cost + c
		out = append(out, &graphWaypoint{node: dst, prev: from, cost: cost, total: cost + g.estimate[dst]})
	}
	return out
}

func (g *testGraph) start(node string) *graphWaypoint {
	return &graphWaypoint{node: node, total: g.estimate[node]}
}

// S -> A -> G is cheaper than the direct S -> G edge.
func diamondGraph() *testGraph {
	return &testGraph{
		edges: map[string]map[string]float64{
			"S": {"A": 1, "B": 4, "G": 10},
			"A": {"B": 1, "G": 5},
			"B": {"G": 1},
		},
		estimate: map[string]float64{"S": 3, "A": 2, "B": 1, "G": 0},
		goal:     "G",
	}
}

func newGraphState(t *testing.T, g *testGraph) *State[*testGraph, string, *graphWaypoint] {
	t.Helper()
	s, err := NewState[*testGraph, string, *graphWaypoint](g)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func TestFindPath(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		graph     *testGraph
		start     string
		opts      []Option
		found     bool
		route     []string
		totalCost float64
	}{
		"cheapest route through detours": {
			graph:     diamondGraph(),
			start:     "S",
			found:     true,
			route:     []string{"S", "A", "B", "G"},
			totalCost: 3,
		},
		"start is goal": {
			graph:     diamondGraph(),
			start:     "G",
			found:     true,
			route:     []string{"G"},
			totalCost: 0,
		},
		"unreachable goal": {
			graph: &testGraph{
				edges: map[string]map[string]float64{"S": {"A": 1}, "A": {"S": 1}},
				goal:  "G",
			},
			start: "S",
			found: false,
		},
		"max cost prunes every route": {
			graph: diamondGraph(),
			start: "S",
			opts:  []Option{WithMaxCost(2.5)},
			found: false,
		},
		"max cost at the limit is kept": {
			graph:     diamondGraph(),
			start:     "S",
			opts:      []Option{WithMaxCost(3)},
			found:     true,
			route:     []string{"S", "A", "B", "G"},
			totalCost: 3,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			state := newGraphState(t, tc.graph)
			opts := append([]Option{WithLogger(logging.Discard())}, tc.opts...)

			res, err := FindPath[*testGraph, string, *graphWaypoint](context.Background(), state, tc.graph.start(tc.start), tc.graph, opts...)
			if err != nil {
				t.Fatalf("FindPath: %v", err)
			}
			if res.Found != tc.found {
				t.Fatalf("expected found=%v, got %v", tc.found, res.Found)
			}
			if res.Expansions == 0 {
				t.Errorf("expected at least one expansion")
			}
			if !tc.found {
				if n := state.NumOpenWaypoints(); n != 0 {
					t.Errorf("exhausted search should leave nothing open, got %d", n)
				}
				return
			}
			if diff := cmp.Diff(tc.route, res.Goal.route()); diff != "" {
				t.Errorf("route mismatch (-want +got):\n%s", diff)
			}
			if res.Goal.PreviousCost() != tc.totalCost {
				t.Errorf("expected cost %v, got %v", tc.totalCost, res.Goal.PreviousCost())
			}
			if !state.IsLocationClosed(tc.graph.goal) {
				t.Errorf("goal should be closed after the search")
			}
		})
	}
}

func TestFindPath_Canceled(t *testing.T) {
	t.Parallel()
	g := diamondGraph()
	state := newGraphState(t, g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindPath[*testGraph, string, *graphWaypoint](ctx, state, g.start("S"), g, WithLogger(logging.Discard()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDijkstraFindPath(t *testing.T) {
	t.Parallel()
	g := diamondGraph()
	g.estimate = nil
	state := newGraphState(t, g)

	res, err := DijkstraFindPath[*testGraph, string, *graphWaypoint](context.Background(), state, g.start("S"), g, WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("DijkstraFindPath: %v", err)
	}
	if !res.Found || res.Goal.PreviousCost() != 3 {
		t.Errorf("expected cost 3 route, got %+v", res)
	}
	// without a heuristic every cheaper node is closed before the goal
	for _, n := range []string{"S", "A", "B", "G"} {
		if !state.IsLocationClosed(n) {
			t.Errorf("expected %s closed", n)
		}
	}
}

func ExampleState() {
	s, _ := NewState[string, string, testWaypoint]("map")
	s.AddOpenWaypoint(testWaypoint{Loc: "A", Prev: 5, Total: 10})
	s.AddOpenWaypoint(testWaypoint{Loc: "A", Prev: 3, Total: 12})
	s.AddOpenWaypoint(testWaypoint{Loc: "B", Prev: 1, Total: 2})

	best, _ := s.MinOpenWaypoint()
	fmt.Println("expand", best.Loc)
	_ = s.CloseWaypoint(best.Loc)

	best, _ = s.MinOpenWaypoint()
	fmt.Println("expand", best.Loc, "prev", best.Prev)
	fmt.Println("closed B:", s.IsLocationClosed("B"))
	fmt.Println("open:", s.NumOpenWaypoints())
	// Output:
	// expand B
	// expand A prev 3
	// closed B: true
	// open: 1
}
