package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Bold", "Canny", "Careful", "Cunning", "Daring", "Dashing", "Eager", "Fearless", "Gallant", "Hasty",
	"Lucky", "Patient", "Plucky", "Quiet", "Reckless", "Shrewd", "Sly", "Steady", "Stubborn", "Swift",
	"Tricky", "Wary", "Wily", "Witty",
}

var nouns = []string{
	"Baron", "Captain", "Cardinal", "Count", "Dealer", "Duchess", "Duke", "Earl", "Gambler", "Jester",
	"Knave", "Knight", "Marquis", "Monarch", "Page", "Queen", "Regent", "Rook", "Sheriff", "Squire",
	"Viceroy", "Viscount",
}

// RandomName returns a random player name by combining an adjective with a title
func RandomName() string {
	adjective := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]

	return fmt.Sprintf("%s %s", adjective, noun)
}
