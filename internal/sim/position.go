package sim

import (
	"strconv"
	"strings"
)

// Position is a (row, col) grid coordinate.
type Position struct {
	Row, Col int
}

// ParsePositions parses a semicolon-separated list of "row,col" pairs,
// e.g. "15,15;3,7". Entries with the wrong field count or non-numeric
// fields are dropped silently; order and duplicates are preserved.
func ParsePositions(s string) []Position {
	var positions []Position
	for _, entry := range strings.Split(s, ";") {
		parts := strings.Split(entry, ",")
		if len(parts) != 2 {
			continue
		}
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		positions = append(positions, Position{Row: row, Col: col})
	}
	return positions
}
