package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math"
	"math/rand"

	"tricktable/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// seedSource provides seeds for decks that were not given one explicitly
var seedSource rng.Generator = rng.Crypto{}

// Deck represents a playing deck, possibly built from multiple 52-card sets
type Deck struct {
	Cards  []*Card `json:"cards"`
	nDecks int
	seed   int64
	rng    *rand.Rand
}

// New returns a new single deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return NewNDecks(1)
}

// NewNDecks returns a new unshuffled deck holding nDecks copies of the standard 52-card set
func NewNDecks(nDecks int) *Deck {
	if nDecks < 1 {
		panic("nDecks must be >= 1")
	}

	d := &Deck{
		nDecks: nDecks,
		seed:   -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed used to shuffle the deck
func (d *Deck) Seed() int64 {
	return d.seed
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, d.nDecks*52)
	for n := 0; n < d.nDecks; n++ {
		for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
			for rank := 2; rank <= Ace; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	d.Cards = cards
}

// Initialize rebuilds the full ordered deck and shuffles it.
// Any previously drawn cards are forgotten.
func (d *Deck) Initialize() {
	d.buildDeck()
	d.Shuffle()
}

// Shuffle will shuffle the deck of cards.
// If no seed was set, one is drawn from the crypto source.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.SetSeed(int64(seedSource.Intn(math.MaxInt32)))
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
