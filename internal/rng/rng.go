package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Source returns a fresh generator for a single shuffle
type Source func() Generator

// CryptoSource returns a Source that hands out crypto-backed generators
func CryptoSource() Source {
	return func() Generator {
		return Crypto{}
	}
}

// SeededSource returns a Source whose generators continue a single seeded sequence.
// Two sources built from the same seed produce the same shuffles in the same order.
func SeededSource(seed int64) Source {
	s := NewSeeded(seed)
	return func() Generator {
		return s
	}
}
