package main

const (
	minTerminalRows = 10
	minTerminalCols = 30
)

// arena is the bordered play area. The border line runs along the stored
// coordinates; snake and food cells live strictly inside it. Row 0 of the
// terminal holds the score line and the last row the instructions, so the
// border is inset by one row at the top and bottom.
type arena struct {
	borderTop, borderLeft     int
	borderBottom, borderRight int
}

func newArena(rows, cols int) arena {
	return arena{
		borderTop:    1,
		borderLeft:   1,
		borderBottom: rows - 2,
		borderRight:  cols - 2,
	}
}

func terminalTooSmall(rows, cols int) bool {
	return rows < minTerminalRows || cols < minTerminalCols
}

// hitsWall reports whether c sits on or beyond the border line.
func (a arena) hitsWall(c cell) bool {
	return c.row <= a.borderTop || c.row >= a.borderBottom ||
		c.col <= a.borderLeft || c.col >= a.borderRight
}

func (a arena) innerRows() int {
	return a.borderBottom - a.borderTop - 1
}

func (a arena) innerCols() int {
	return a.borderRight - a.borderLeft - 1
}
