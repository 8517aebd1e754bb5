package grid

import "strings"

// Render draws m as text, one line per row: S and F for start and finish, *
// for the cells of path, and the map file alphabet for everything else.
func Render(m *Map, path []Location) string {
	onPath := make(map[Location]bool, len(path))
	for _, loc := range path {
		onPath[loc] = true
	}

	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			loc := Location{X: x, Y: y}
			switch {
			case loc == m.start:
				sb.WriteByte('S')
			case loc == m.finish:
				sb.WriteByte('F')
			case onPath[loc]:
				sb.WriteByte('*')
			default:
				c, err := cellToByte(m.CellValue(loc))
				if err != nil {
					c = '+'
				}
				sb.WriteByte(c)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
