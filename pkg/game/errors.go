package game

import (
	"errors"
	"fmt"
)

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrRoundNotStarted is an error when trick state is queried before a leader is set
var ErrRoundNotStarted = errors.New("the round has not started")

// ErrTrickNotComplete is an error when the trick winner is requested mid-trick
var ErrTrickNotComplete = errors.New("the trick is not complete")

// ConfigurationError is an error on the game's player bounds or options
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid game configuration: %s", e.Reason)
}

// CapacityError is an error when the seated player count cannot support an operation
type CapacityError struct {
	Min, Max, Got int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", e.Min, e.Max, e.Got)
}

// DuplicateNameError is an error when a player name is already taken
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("a player named %q is already seated", e.Name)
}

// InsufficientCardsError is an error when the deck cannot supply a deal
type InsufficientCardsError struct {
	Need, Have int
}

func (e InsufficientCardsError) Error() string {
	return fmt.Sprintf("deal needs %d cards, deck has %d", e.Need, e.Have)
}

// InvalidPlayerError is an error when a seat index does not point at a seated player
type InvalidPlayerError struct {
	Index int
}

func (e InvalidPlayerError) Error() string {
	return fmt.Sprintf("no player seated at index %d", e.Index)
}

// NonEmptyHandError blocks a safe restart while a player still holds cards
type NonEmptyHandError struct {
	Name string
}

func (e NonEmptyHandError) Error() string {
	return fmt.Sprintf("%s still holds cards", e.Name)
}
