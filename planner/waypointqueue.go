package planner

import (
	"container/heap"
	"math"
)

// A queuedWaypoint is something we manage in a waypoint-priority queue.
type queuedWaypoint[W any] struct {
	waypoint W
	cost     float64 // TotalCost of waypoint, cached for Less.
	// The index is needed by replace and remove, and is maintained by the heap.Interface methods.
	index int
}

// A waypointQueue implements heap.Interface and holds queuedWaypoints.
type waypointQueue[W any] []*queuedWaypoint[W]

func (wq waypointQueue[W]) Len() int { return len(wq) }

func (wq waypointQueue[W]) Less(i, j int) bool {
	// We want the root to be the lowest, not highest, total cost so we use lesser than here.
	// NaN sorts after every number.
	a, b := wq[i].cost, wq[j].cost
	return a < b || (!math.IsNaN(a) && math.IsNaN(b))
}

func (wq waypointQueue[W]) Swap(i, j int) {
	wq[i], wq[j] = wq[j], wq[i]
	wq[i].index = i
	wq[j].index = j
}

func (wq *waypointQueue[W]) Push(x any) {
	n := len(*wq)
	item := x.(*queuedWaypoint[W])
	item.index = n
	*wq = append(*wq, item)
}

func (wq *waypointQueue[W]) Pop() any {
	old := *wq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1 // for safety
	*wq = old[0 : n-1]
	return item
}

// peek returns the lowest-cost item without removing it, or nil when empty.
func (wq waypointQueue[W]) peek() *queuedWaypoint[W] {
	if len(wq) == 0 {
		return nil
	}
	return wq[0]
}

// replace swaps the waypoint held by item and restores heap order.
func (wq *waypointQueue[W]) replace(item *queuedWaypoint[W], waypoint W, cost float64) {
	item.waypoint = waypoint
	item.cost = cost
	heap.Fix(wq, item.index)
}

func (wq *waypointQueue[W]) remove(item *queuedWaypoint[W]) {
	heap.Remove(wq, item.index)
}
