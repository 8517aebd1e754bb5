package planner

import (
	"container/heap"
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is returned when a State is built or driven with input
// that breaks its contract.
var ErrInvalidArgument = errors.New("invalid argument")

// Waypoint is a node on the search frontier. Implementations must be
// immutable: a better path to a location is a new Waypoint, never an edit.
type Waypoint[L comparable] interface {
	Location() L
	// PreviousCost is the accumulated cost from the start (g-score).
	PreviousCost() float64
	// TotalCost is PreviousCost plus the estimate to the goal (f-score).
	TotalCost() float64
}

// State holds the open and closed waypoints of a single A* run over one map.
//
// The open set holds at most one waypoint per location, the cheapest by
// PreviousCost offered so far. The closed set holds finalized waypoints and
// is never rewritten. A location is never in both.
//
// State is not safe for concurrent use.
type State[M any, L comparable, W Waypoint[L]] struct {
	m M

	open      map[L]*queuedWaypoint[W]
	openOrder waypointQueue[W]
	closed    map[L]W
}

// NewState binds a fresh State to m. It fails if m is nil.
func NewState[M any, L comparable, W Waypoint[L]](m M) (*State[M, L, W], error) {
	if isNil(m) {
		return nil, fmt.Errorf("map cannot be nil: %w", ErrInvalidArgument)
	}
	return &State[M, L, W]{
		m:      m,
		open:   make(map[L]*queuedWaypoint[W]),
		closed: make(map[L]W),
	}, nil
}

// Map returns the map this state was built for.
func (s *State[M, L, W]) Map() M {
	return s.m
}

func (s *State[M, L, W]) NumOpenWaypoints() int {
	return len(s.open)
}

func (s *State[M, L, W]) NumClosedWaypoints() int {
	return len(s.closed)
}

// AddOpenWaypoint offers candidate to the open set. It is stored if its
// location is not open yet, or if it is strictly cheaper by PreviousCost than
// the waypoint already open there; ties keep the existing one. The return
// value reports whether the open set changed.
//
// The closed set is not consulted.
func (s *State[M, L, W]) AddOpenWaypoint(candidate W) bool {
	loc := candidate.Location()

	current, ok := s.open[loc]
	if !ok {
		item := &queuedWaypoint[W]{waypoint: candidate, cost: candidate.TotalCost()}
		heap.Push(&s.openOrder, item)
		s.open[loc] = item
		return true
	}
	if candidate.PreviousCost() < current.waypoint.PreviousCost() {
		s.openOrder.replace(current, candidate, candidate.TotalCost())
		return true
	}
	return false
}

// MinOpenWaypoint returns the open waypoint with the lowest TotalCost, and
// false if nothing is open. Which of several equally cheap waypoints comes
// back is unspecified.
func (s *State[M, L, W]) MinOpenWaypoint() (W, bool) {
	item := s.openOrder.peek()
	if item == nil {
		var zero W
		return zero, false
	}
	return item.waypoint, true
}

// OpenWaypoint returns the waypoint currently open at loc.
func (s *State[M, L, W]) OpenWaypoint(loc L) (W, bool) {
	item, ok := s.open[loc]
	if !ok {
		var zero W
		return zero, false
	}
	return item.waypoint, true
}

// CloseWaypoint moves the waypoint open at loc into the closed set. Closing a
// location that is not open is rejected with ErrInvalidArgument and leaves
// both sets untouched.
func (s *State[M, L, W]) CloseWaypoint(loc L) error {
	item, ok := s.open[loc]
	if !ok {
		return fmt.Errorf("close %v: location is not open: %w", loc, ErrInvalidArgument)
	}
	s.openOrder.remove(item)
	delete(s.open, loc)
	s.closed[loc] = item.waypoint
	return nil
}

func (s *State[M, L, W]) IsLocationClosed(loc L) bool {
	_, ok := s.closed[loc]
	return ok
}

// ClosedWaypoint returns the finalized waypoint at loc.
func (s *State[M, L, W]) ClosedWaypoint(loc L) (W, bool) {
	w, ok := s.closed[loc]
	return w, ok
}

// isNil catches both an untyped nil and a typed nil hiding behind M.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
