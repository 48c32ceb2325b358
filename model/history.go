package model

// DefaultHistorySize is how many recent generations History remembers.
const DefaultHistorySize = 5

// History keeps hashes of recent generations to spot still lifes and short
// oscillators
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Observe records g and reports whether it repeats one of the last three
// generations seen, i.e. the board is static or cycling with period 2 or 3
func (h *History) Observe(g *Grid) bool {
	current := g.GetGridHash()

	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == current {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

