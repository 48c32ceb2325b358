package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Evolver computes successive generations of a board.
type Evolver struct {
	// Pool, when set, supplies the buffers for new generations.
	Pool *GridPool
	// Bounded restricts the scan to the box around living cells.
	Bounded bool
}

// Step computes the generation that follows b without modifying it.
func Step(b *Board) (*Grid, uint64, error) {
	return Evolver{}.Step(b)
}

// Step returns the next grid of b together with its generation number. The
// board is only read; the returned grid is owned by the caller.
func (e Evolver) Step(b *Board) (*Grid, uint64, error) {
	var (
		next *Grid
		err  error
	)
	if e.Bounded {
		next, err = b.grid.NextGenerationBounded(e.Pool)
	} else {
		next, err = b.grid.NextGeneration(e.Pool)
	}
	if err != nil {
		return nil, b.generation, errors.Wrapf(err, "[Step] generation %d", b.generation)
	}
	return next, b.generation + 1, nil
}

// NextGeneration calculates the next generation by scanning every cell
func (g *Grid) NextGeneration(pool *GridPool) (*Grid, error) {
	next := newGrid(pool, g.width, g.height)

	for y := range g.height {
		for x := range g.width {
			c := g.cells[y][x]
			if !c.Valid() {
				GridToPool(next, pool)
				return nil, invalidCell(c, x, y)
			}
			if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), c == Alive) {
				next.cells[y][x] = Alive
			}
		}
	}

	return next, nil
}

// NextGenerationBounded calculates the next generation only in the active
// region; cells further than one step from any living cell stay dead
func (g *Grid) NextGenerationBounded(pool *GridPool) (*Grid, error) {
	b, err := g.activeBounds()
	if err != nil {
		return nil, err
	}

	next := newGrid(pool, g.width, g.height)
	if !b.valid {
		return next, nil
	}

	// Process only the active region + 1 margin
	minX := max(0, b.minX-1)
	maxX := min(g.width-1, b.maxX+1)
	minY := max(0, b.minY-1)
	maxY := min(g.height-1, b.maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if rules.ApplyConwayRules(g.CountNeighborsOptimized(x, y), g.cells[y][x] == Alive) {
				next.cells[y][x] = Alive
			}
		}
	}

	return next, nil
}
