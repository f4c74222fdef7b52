package main

type cell struct {
	row, col int
}

type direction struct {
	dRow, dCol int
}

var (
	dirUp    = direction{dRow: -1}
	dirDown  = direction{dRow: 1}
	dirLeft  = direction{dCol: -1}
	dirRight = direction{dCol: 1}
)

func (d direction) opposite() direction {
	return direction{dRow: -d.dRow, dCol: -d.dCol}
}

type snake struct {
	// cells[0] is the head, cells[len-1] the tail.
	cells []cell
	// heading is applied on the next advance. moved is the direction of
	// the previous advance; commands opposite to moved are ignored so a
	// single keystroke can never fold the snake back onto itself.
	heading direction
	moved   direction
}

func newSnake(start cell, heading direction) snake {
	return snake{
		cells:   []cell{start},
		heading: heading,
		moved:   heading,
	}
}

func (s snake) head() cell {
	return s.cells[0]
}

// nextHead is where the head will be after the next advance.
func (s snake) nextHead() cell {
	return cell{row: s.head().row + s.heading.dRow, col: s.head().col + s.heading.dCol}
}

func (s snake) withDirection(requested direction) snake {
	// If the snake is moving right, ignore the left key, and so on.
	if requested == s.moved.opposite() {
		return s
	}
	s.heading = requested
	return s
}

// advance moves the snake one cell along its heading. The tail cell is
// kept when food was eaten, so the snake grows by one; otherwise it is
// dropped and the length is unchanged. The vacated tail cell is returned
// so the caller can clear it from the display.
func (s snake) advance(ateFood bool) (snake, cell) {
	var vacated cell
	grown := make([]cell, 0, len(s.cells)+1)
	grown = append(grown, s.nextHead())
	if ateFood {
		grown = append(grown, s.cells...)
	} else {
		vacated = s.cells[len(s.cells)-1]
		grown = append(grown, s.cells[:len(s.cells)-1]...)
	}
	s.cells = grown
	s.moved = s.heading
	return s, vacated
}

// hitsSelf reports whether the head overlaps the body. It must run on the
// post-advance snake: the cell a tail vacates on the same tick is gone by
// then and does not count as a collision.
func (s snake) hitsSelf() bool {
	head := s.head()
	for _, b := range s.cells[1:] {
		if b == head {
			return true
		}
	}
	return false
}

func snakeContains(cells []cell, c cell) bool {
	for _, s := range cells {
		if s == c {
			return true
		}
	}
	return false
}
