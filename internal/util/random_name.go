package util

import (
	"fmt"

	"blackjack/internal/rng"
)

var adjectives = []string{
	"Lucky", "Bold", "Quiet", "Steady", "Daring", "Cautious", "Sly", "Patient", "Reckless", "Happy", "Grand",
	"Red", "Blue", "Green", "Golden", "Silver", "Fuzzy", "Smiling", "Tall", "Swift", "Prime", "Wild",
}

var animals = []string{
	"Dog", "Cat", "Otter", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Fox", "Wolf", "Owl",
	"Panda", "Eagle", "Okapi", "Badger", "Falcon", "Raccoon", "Heron", "Lynx",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}
