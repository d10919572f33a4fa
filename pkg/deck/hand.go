package deck

import "errors"

// ErrNoSuchCard is an error when a hand index does not point at a card
var ErrNoSuchCard = errors.New("no card at that index")

// Hand represents a player's cards, kept sorted ascending by card ID
type Hand []*Card

// AddCard validates the card and inserts it keeping the hand sorted.
// The card is appended and then swapped leftward until order is restored,
// so inserting into an already-sorted hand costs a single pass.
func (h *Hand) AddCard(card *Card) error {
	if !card.Valid() {
		return ErrInvalidCard
	}

	*h = append(*h, card)
	for i := len(*h) - 1; i > 0 && (*h)[i].ID() < (*h)[i-1].ID(); i-- {
		(*h)[i], (*h)[i-1] = (*h)[i-1], (*h)[i]
	}

	return nil
}

// Remove removes the cards at the given indices and returns them in index order.
// All indices are validated up front; on error the hand is left untouched.
func (h *Hand) Remove(indices ...int) ([]*Card, error) {
	taken := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(*h) || taken[i] {
			return nil, ErrNoSuchCard
		}

		taken[i] = true
	}

	removed := make([]*Card, 0, len(indices))
	for _, i := range indices {
		removed = append(removed, (*h)[i])
	}

	kept := make(Hand, 0, len(*h)-len(indices))
	for i, c := range *h {
		if !taken[i] {
			kept = append(kept, c)
		}
	}

	*h = kept
	return removed, nil
}

// Sort fully re-sorts the hand by card ID using a counting sort.
// Cards sharing an ID (multi-deck shoes) keep their relative order, which
// keeps replayed hands byte-for-byte identical to the originals.
func (h Hand) Sort() {
	if len(h) < 2 {
		return
	}

	buckets := make([]Hand, maxCardID+1)
	for _, c := range h {
		buckets[c.ID()] = append(buckets[c.ID()], c)
	}

	i := 0
	for _, bucket := range buckets {
		for _, c := range bucket {
			h[i] = c
			i++
		}
	}
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
