package rules

const (
	// BirthNeighbors is the exact neighbor count that brings a dead cell to life.
	BirthNeighbors = 3
	// MinSurvivalNeighbors and MaxSurvivalNeighbors bound the neighbor counts a
	// living cell survives with.
	MinSurvivalNeighbors = 2
	MaxSurvivalNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A living cell survives with 2 or 3 living neighbors, a dead cell is born with exactly 3 (B3/S23).
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinSurvivalNeighbors && neighbors <= MaxSurvivalNeighbors
	}
	return neighbors == BirthNeighbors
}
