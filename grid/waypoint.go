package grid

// Waypoint is one step of a candidate path. It never changes once built; a
// cheaper way to the same cell is a different Waypoint.
type Waypoint struct {
	loc       Location
	prev      *Waypoint
	prevCost  float64
	remaining float64
}

// NewWaypoint builds a waypoint reached from prev (nil for the start) at an
// accumulated cost of prevCost, with remaining as the estimate to the finish.
func NewWaypoint(loc Location, prev *Waypoint, prevCost, remaining float64) *Waypoint {
	return &Waypoint{
		loc:       loc,
		prev:      prev,
		prevCost:  prevCost,
		remaining: remaining,
	}
}

func (w *Waypoint) Location() Location     { return w.loc }
func (w *Waypoint) Previous() *Waypoint    { return w.prev }
func (w *Waypoint) PreviousCost() float64  { return w.prevCost }
func (w *Waypoint) RemainingCost() float64 { return w.remaining }

func (w *Waypoint) TotalCost() float64 {
	return w.prevCost + w.remaining
}

// Path returns the locations from the start up to and including w.
func (w *Waypoint) Path() []Location {
	n := 0
	for cur := w; cur != nil; cur = cur.prev {
		n++
	}
	path := make([]Location, n)
	for cur := w; cur != nil; cur = cur.prev {
		n--
		path[n] = cur.loc
	}
	return path
}
