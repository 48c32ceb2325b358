package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG returns a deterministic generator for seed; a zero seed is replaced
// with one taken from the clock. The seed actually used is returned so a run
// can be reproduced.
func NewRNG(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, 0)), seed
}
