package blackjack

import "blackjack/internal/rng"

// Options contains options for creating a new blackjack session
type Options struct {
	StartingBankroll int
	DealerName       string
	// Source hands out a generator for each shuffle
	Source rng.Source
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBankroll: 1000,
		DealerName:       "Dealer",
		Source:           rng.CryptoSource(),
	}
}
