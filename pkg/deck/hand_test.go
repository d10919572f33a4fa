package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertSorted(t *testing.T, h Hand) {
	t.Helper()
	for i := 1; i < len(h); i++ {
		assert.LessOrEqual(t, h[i-1].ID(), h[i].ID())
	}
}

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := make(Hand, 0)
	for _, s := range []string{"14s", "2c", "10h", "5d", "5c"} {
		a.NoError(hand.AddCard(CardFromString(s)))
		assertSorted(t, hand)
	}

	a.Equal("2c,5c,5d,10h,14s", hand.String())

	a.Equal(ErrInvalidCard, hand.AddCard(nil))
	a.Equal(ErrInvalidCard, hand.AddCard(&Card{Rank: 20, Suit: Clubs}))
	a.Equal(5, len(hand))
}

func TestHand_Remove(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,5c,5d,10h,14s"))

	removed, err := hand.Remove(3, 0)
	a.NoError(err)
	a.Equal("10h,2c", CardsToString(removed))
	a.Equal("5c,5d,14s", hand.String())

	// bad index leaves the hand untouched
	removed, err = hand.Remove(1, 3)
	a.Equal(ErrNoSuchCard, err)
	a.Nil(removed)
	a.Equal("5c,5d,14s", hand.String())

	// so does a duplicate index
	_, err = hand.Remove(1, 1)
	a.Equal(ErrNoSuchCard, err)
	a.Equal("5c,5d,14s", hand.String())
}

func TestHand_Sort(t *testing.T) {
	hand := Hand(CardsFromString("14s,2c,10h,5d,5c"))
	hand.Sort()
	assert.Equal(t, "2c,5c,5d,10h,14s", hand.String())
}

func TestHand_Sort_stable(t *testing.T) {
	// two decks in play: duplicate IDs must keep their relative order
	first := &Card{Rank: 5, Suit: Diamonds}
	second := &Card{Rank: 5, Suit: Diamonds}

	hand := Hand{CardFromString("14s"), first, CardFromString("2c"), second}
	hand.Sort()

	assert.Equal(t, "2c,5d,5d,14s", hand.String())
	assert.Same(t, first, hand[1])
	assert.Same(t, second, hand[2])
}

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,5d"))
	assert.True(t, hand.HasCard(CardFromString("5d")))
	assert.False(t, hand.HasCard(CardFromString("5c")))
}
