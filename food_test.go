package main

import (
	"math/rand"
	"testing"
)

func TestPlaceFood_AvoidsSnakeAndStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := newArena(10, 30)
	snakeCells := []cell{
		{row: 5, col: 5}, {row: 5, col: 6}, {row: 5, col: 7},
		{row: 4, col: 7}, {row: 3, col: 7},
	}

	for i := 0; i < 1000; i++ {
		food := placeFood(rng, snakeCells, a)

		if snakeContains(snakeCells, food) {
			t.Fatalf("Expected food off the snake, got %v", food)
		}
		if a.hitsWall(food) {
			t.Fatalf("Expected food strictly inside the arena, got %v", food)
		}
	}
}

func TestPlaceFood_FindsLastFreeCell(t *testing.T) {
	// 3x3 terminal interior of exactly one free cell once the snake is laid
	// out over the rest.
	a := arena{borderTop: 0, borderLeft: 0, borderBottom: 4, borderRight: 4}
	var snakeCells []cell
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			if row == 2 && col == 2 {
				continue
			}
			snakeCells = append(snakeCells, cell{row: row, col: col})
		}
	}

	food := placeFood(rand.New(rand.NewSource(7)), snakeCells, a)

	if food != (cell{row: 2, col: 2}) {
		t.Errorf("Expected food at the only free cell (2,2), got %v", food)
	}
}
