package seatmap

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Rand is the source of randomness for occupancy draws. Injecting it
// keeps generated layouts testable; production uses SafeRand.
type Rand interface {
	Float64() float64
}

type SafeRand struct{}

func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

func (s *SafeRand) Float64() float64 {
	max := new(big.Int).Lsh(big.NewInt(1), 53)
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(value.Int64()) / math.Pow(2, 53)
}
