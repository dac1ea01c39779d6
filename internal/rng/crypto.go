package rng

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Crypto draws from crypto/rand, or from Reader when one is set
type Crypto struct {
	Reader io.Reader
}

// Intn returns a random number from 0 <= x < n
// It panics if the underlying reader fails; a shuffle cannot continue without randomness.
func (c Crypto) Intn(n int) int {
	reader := c.Reader
	if reader == nil {
		reader = rand.Reader
	}

	b, err := rand.Int(reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
