package main

import "math/rand"

// placeFood picks a uniformly random cell inside the arena that the snake
// does not occupy. Free cells always exist in practice (a snake filling the
// whole arena is not handled), so the rejection loop terminates.
func placeFood(rng *rand.Rand, snakeCells []cell, a arena) cell {
	for {
		c := cell{
			row: a.borderTop + 1 + rng.Intn(a.innerRows()),
			col: a.borderLeft + 1 + rng.Intn(a.innerCols()),
		}
		if !snakeContains(snakeCells, c) {
			return c
		}
	}
}
