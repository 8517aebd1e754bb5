// Package grid is a two-dimensional map for the planner: locations are cells,
// each cell carries an extra cost of entering it, and moves go to any of the
// eight surrounding cells.
package grid

import (
	"errors"
	"fmt"
)

// Impassable marks a cell that can never be entered.
const Impassable = -1

// MaxCells bounds width*height of any map.
const MaxCells = 1 << 24

var (
	ErrInvalidSize = errors.New("invalid map size")
	ErrOutOfBounds = errors.New("location out of bounds")
	ErrBadCell     = errors.New("invalid cell value")
)

// Location is a cell coordinate. It is a plain value, so two Locations for
// the same cell are equal and hash the same as map keys.
type Location struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Map is a width x height grid of cell costs with a start and a finish.
type Map struct {
	width, height int
	cells         []int

	start, finish Location
	maxCost       float64
}

// NewMap returns an all-free map with start and finish at the origin.
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Map{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

func (m *Map) Contains(loc Location) bool {
	return loc.X >= 0 && loc.X < m.width && loc.Y >= 0 && loc.Y < m.height
}

// CellValue returns the extra cost of entering loc. Cells off the map read as
// Impassable.
func (m *Map) CellValue(loc Location) int {
	if !m.Contains(loc) {
		return Impassable
	}
	return m.cells[loc.Y*m.width+loc.X]
}

// SetCellValue sets the extra cost of entering loc; use Impassable for walls.
func (m *Map) SetCellValue(loc Location, value int) error {
	if !m.Contains(loc) {
		return fmt.Errorf("set cell %s: %w", loc, ErrOutOfBounds)
	}
	if value < Impassable {
		return fmt.Errorf("set cell %s to %d: %w", loc, value, ErrBadCell)
	}
	m.cells[loc.Y*m.width+loc.X] = value
	return nil
}

func (m *Map) Passable(loc Location) bool {
	return m.CellValue(loc) != Impassable
}

func (m *Map) Start() Location  { return m.start }
func (m *Map) Finish() Location { return m.finish }

func (m *Map) SetStart(loc Location) error {
	if !m.Contains(loc) {
		return fmt.Errorf("start %s: %w", loc, ErrOutOfBounds)
	}
	m.start = loc
	return nil
}

func (m *Map) SetFinish(loc Location) error {
	if !m.Contains(loc) {
		return fmt.Errorf("finish %s: %w", loc, ErrOutOfBounds)
	}
	m.finish = loc
	return nil
}

// MaxCost is the path budget stored with the map; zero means unlimited.
func (m *Map) MaxCost() float64 { return m.maxCost }

func (m *Map) SetMaxCost(limit float64) {
	m.maxCost = limit
}
