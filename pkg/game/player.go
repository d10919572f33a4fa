package game

import (
	"tricktable/pkg/deck"
)

// Player is an individual seated at the table
type Player struct {
	Name     string
	hand     deck.Hand
	captured []*deck.Card
}

// NewPlayer returns a new player
func NewPlayer(name string) *Player {
	return &Player{
		Name:     name,
		hand:     make(deck.Hand, 0),
		captured: make([]*deck.Card, 0),
	}
}

// AddCardToHand validates the card and inserts it into the sorted hand
func (p *Player) AddCardToHand(card *deck.Card) error {
	return p.hand.AddCard(card)
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Captured returns a shallow clone of the player's captured pile
func (p *Player) Captured() []*deck.Card {
	return append([]*deck.Card{}, p.captured...)
}

// PlayFromHand removes the cards at the given hand indices, runs each through
// parse and appends the results to the table in index order.
// The move is atomic: a bad index or a parse result that is not a valid card
// leaves both the hand and the table untouched.
func (p *Player) PlayFromHand(indices []int, table *[]*deck.Card, parse ParseCardFunc) error {
	hand := p.hand.Clone()
	removed, err := hand.Remove(indices...)
	if err != nil {
		return err
	}

	played := make([]*deck.Card, len(removed))
	for i, card := range removed {
		if parse != nil {
			card = parse(card)
		}

		if !card.Valid() {
			return deck.ErrInvalidCard
		}

		played[i] = card
	}

	p.hand = hand
	*table = append(*table, played...)
	return nil
}

// CaptureCards moves every card on the table into the player's captured pile
func (p *Player) CaptureCards(table *[]*deck.Card) {
	p.captured = append(p.captured, *table...)
	*table = (*table)[:0]
}

// ClearCardsDangerously empties the hand and the captured pile unconditionally
func (p *Player) ClearCardsDangerously() {
	p.hand = make(deck.Hand, 0)
	p.captured = make([]*deck.Card, 0)
}

// SortHand fully re-sorts the hand.
// Incremental inserts keep the hand sorted on their own; this is the recovery
// step for replay paths that rebuilt the hand out of order.
func (p *Player) SortHand() {
	p.hand.Sort()
}
