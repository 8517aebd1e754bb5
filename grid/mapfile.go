package grid

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// mapDocument is the on-disk form of a Map. Rows are listed top to bottom;
// '.' is a free cell, '#' is a wall and '1'..'9' add that much to the cost of
// entering the cell.
type mapDocument struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Start   Location `yaml:"start"`
	Finish  Location `yaml:"finish"`
	MaxCost float64  `yaml:"maxCost,omitempty"`
	Rows    []string `yaml:"rows"`
}

// LoadMap reads a YAML map file.
func LoadMap(filename string) (*Map, error) {
	inBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%q): %w", filename, err)
	}
	m, err := ParseMap(inBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return m, nil
}

func ParseMap(data []byte) (*Map, error) {
	m := &Map{}
	if err := yaml.UnmarshalStrict(data, m); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	// yaml.v2 skips UnmarshalYAML entirely for an empty or null document.
	if m.cells == nil {
		return nil, fmt.Errorf("empty map document: %w", ErrInvalidSize)
	}
	return m, nil
}

// WriteMap stores m as YAML, replacing filename if it exists.
func WriteMap(filename string, m *Map) error {
	outBytes, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}
	if err := os.WriteFile(filename, outBytes, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%q): %w", filename, err)
	}
	return nil
}

func (m *Map) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var doc mapDocument
	if err := unmarshal(&doc); err != nil {
		return err
	}
	if len(doc.Rows) != doc.Height {
		return fmt.Errorf("%d rows for height %d: %w", len(doc.Rows), doc.Height, ErrInvalidSize)
	}
	for y, row := range doc.Rows {
		if len(row) != doc.Width {
			return fmt.Errorf("row %d has %d cells for width %d: %w", y, len(row), doc.Width, ErrInvalidSize)
		}
	}
	parsed, err := NewMap(doc.Width, doc.Height)
	if err != nil {
		return err
	}
	for y, row := range doc.Rows {
		for x, c := range []byte(row) {
			value, err := cellFromByte(c)
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			parsed.cells[y*doc.Width+x] = value
		}
	}
	if err := parsed.SetStart(doc.Start); err != nil {
		return err
	}
	if err := parsed.SetFinish(doc.Finish); err != nil {
		return err
	}
	if doc.MaxCost < 0 {
		return fmt.Errorf("maxCost %v is negative", doc.MaxCost)
	}
	parsed.maxCost = doc.MaxCost

	*m = *parsed
	return nil
}

func (m *Map) MarshalYAML() (interface{}, error) {
	doc := mapDocument{
		Width:   m.width,
		Height:  m.height,
		Start:   m.start,
		Finish:  m.finish,
		MaxCost: m.maxCost,
		Rows:    make([]string, 0, m.height),
	}
	for y := 0; y < m.height; y++ {
		var sb strings.Builder
		for x := 0; x < m.width; x++ {
			c, err := cellToByte(m.cells[y*m.width+x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			sb.WriteByte(c)
		}
		doc.Rows = append(doc.Rows, sb.String())
	}
	return doc, nil
}

func cellFromByte(c byte) (int, error) {
	switch {
	case c == '.':
		return 0, nil
	case c == '#':
		return Impassable, nil
	case c >= '1' && c <= '9':
		return int(c - '0'), nil
	}
	return 0, fmt.Errorf("%q: %w", c, ErrBadCell)
}

func cellToByte(value int) (byte, error) {
	switch {
	case value == 0:
		return '.', nil
	case value == Impassable:
		return '#', nil
	case value >= 1 && value <= 9:
		return byte('0' + value), nil
	}
	return 0, fmt.Errorf("%d does not fit a map file: %w", value, ErrBadCell)
}

// DemoMap is a small map with a wall, a gap and some rough ground, handy for
// trying the planner out.
func DemoMap() *Map {
	m, _ := NewMap(12, 8)
	for y := 0; y < 7; y++ {
		_ = m.SetCellValue(Location{X: 5, Y: y}, Impassable)
	}
	for x := 7; x < 10; x++ {
		for y := 2; y < 6; y++ {
			_ = m.SetCellValue(Location{X: x, Y: y}, 3)
		}
	}
	_ = m.SetStart(Location{X: 1, Y: 1})
	_ = m.SetFinish(Location{X: 10, Y: 3})
	return m
}
