package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// FirstGeneration is the generation number of a freshly created board.
const FirstGeneration uint64 = 1

// Board is the simulation state owned by the run loop: the current grid, its
// generation number and the cached number of living cells.
type Board struct {
	grid       *Grid
	generation uint64
	aliveCells int
}

// NewBoard wraps grid as generation 1. The grid must be a valid, non-empty
// rectangle of Dead and Alive cells.
func NewBoard(grid *Grid) (*Board, error) {
	if grid == nil || grid.width <= 0 || grid.height <= 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[NewBoard] empty grid")
	}
	alive, err := grid.CountLivingCells()
	if err != nil {
		return nil, errors.Wrap(err, "[NewBoard]")
	}
	return &Board{grid: grid, generation: FirstGeneration, aliveCells: alive}, nil
}

// InitializeRandom fills a new grid with independently chosen Dead or Alive cells.
func InitializeRandom(width, height int, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	g.Randomize(rng)
	return g
}

// NewRandomBoard creates a randomly populated board of the given size.
func NewRandomBoard(width, height int, rng *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewRandomBoard] %dx%d", width, height)
	}
	return NewBoard(InitializeRandom(width, height, rng))
}

func (b *Board) Width() int         { return b.grid.GetWidth() }
func (b *Board) Height() int        { return b.grid.GetHeight() }
func (b *Board) Generation() uint64 { return b.generation }
func (b *Board) AliveCells() int    { return b.aliveCells }

// Grid returns the current generation. Callers must treat it as read-only.
func (b *Board) Grid() *Grid { return b.grid }

// IsExtinct reports whether every cell is dead, the terminal state of a run.
func (b *Board) IsExtinct() bool { return b.aliveCells == 0 }

// Advance installs next as the given generation and returns the grid it
// replaced so the caller can recycle it.
func (b *Board) Advance(next *Grid, generation uint64) (*Grid, error) {
	if next == nil || next.width != b.grid.width || next.height != b.grid.height {
		return nil, errors.Wrap(ErrInvalidDimensions, "[Advance] next generation has a different size")
	}
	if generation != b.generation+1 {
		return nil, errors.Errorf("[Advance] generation %d does not follow %d", generation, b.generation)
	}
	alive, err := next.CountLivingCells()
	if err != nil {
		return nil, errors.Wrap(err, "[Advance]")
	}

	prev := b.grid
	b.grid = next
	b.generation = generation
	b.aliveCells = alive
	return prev, nil
}
