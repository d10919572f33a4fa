package game

import "tricktable/pkg/deck"

// ParseCardFunc transforms a card as it is played to the table.
// The identity transform is used when nil.
type ParseCardFunc func(*deck.Card) *deck.Card

// Options are options for creating a new game
type Options struct {
	// NDecks is the number of 52-card sets shuffled into the deck
	NDecks int

	// Seed fixes the shuffle order; 0 draws a random seed
	Seed int64

	// ParseCard is applied to every card played to the table
	ParseCard ParseCardFunc
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		NDecks: 1,
	}
}
