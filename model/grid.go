package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Valid reports whether the cell holds one of the two known states
func (c Cell) Valid() bool {
	return c == Dead || c == Alive
}

// Grid represents a bounded game board, indexed as cells[row][column]
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// bounds is the bounding box of living cells
type bounds struct {
	minX, maxX, minY, maxY int
	valid                  bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewGridFromRows copies rows into a new grid, checking that the result is a
// non-empty rectangle of Dead and Alive cells
func NewGridFromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGridFromRows] %d rows", len(rows))
	}

	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, errors.Wrapf(ErrInconsistentRowWidth,
				"[NewGridFromRows] row %d has %d cells, want %d", y, len(row), g.width)
		}
		for x, c := range row {
			if !c.Valid() {
				return nil, errors.Wrapf(ErrInvalidCellValue, "[NewGridFromRows] value %d at (%d,%d)", c, x, y)
			}
		}
		copy(g.cells[y], row)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid to new dimensions, leaving every cell dead
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Set stores a cell value; coordinates outside the grid are ignored
func (g *Grid) Set(x, y int, c Cell) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = c
	}
}

// Get returns the state of a cell, Dead outside the grid
func (g *Grid) Get(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Dead
	}
	return g.cells[y][x]
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for y := range g.height {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CountNeighborsOptimized counts living neighbors, clipping at the grid edges
func (g *Grid) CountNeighborsOptimized(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] == Alive {
				count++
			}
		}
	}

	return count
}

// activeBounds calculates the bounding box of living cells, failing on
// any cell that is neither dead nor alive
func (g *Grid) activeBounds() (b bounds, err error) {
	for y := range g.height {
		for x := range g.width {
			switch g.cells[y][x] {
			case Dead:
				continue
			case Alive:
			default:
				return b, invalidCell(g.cells[y][x], x, y)
			}
			if !b.valid {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y, valid: true}
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return b, nil
}

// GetBoundingBoxSize returns the number of cells in the box around all living cells
func (g *Grid) GetBoundingBoxSize() int {
	b, err := g.activeBounds()
	if err != nil || !b.valid {
		return 0
	}
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int, err error) {
	for y := range g.height {
		for x := range g.width {
			switch g.cells[y][x] {
			case Dead:
			case Alive:
				count++
			default:
				return 0, invalidCell(g.cells[y][x], x, y)
			}
		}
	}
	return count, nil
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		h.Write(cellBytes(g.cells[y]))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize sets every cell to Dead or Alive with equal probability
func (g *Grid) Randomize(rng *rand.Rand) {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Cell(rng.IntN(2))
		}
	}
}

// String renders the grid in the 0/1 board file format
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range g.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.width {
			sb.WriteByte('0' + byte(g.cells[y][x]))
		}
	}
	return sb.String()
}

func cellBytes(row []Cell) []byte {
	b := make([]byte, len(row))
	for i, c := range row {
		b[i] = byte(c)
	}
	return b
}

func invalidCell(c Cell, x, y int) error {
	return errors.Wrapf(ErrInvalidCellValue, "value %d at row %d column %d", c, y, x)
}
