package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tricktable/pkg/deck"
)

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()

	g, err := New(nil, 2, 4, Options{Seed: 1})
	assert.NoError(t, err)

	for _, name := range names {
		player, err := g.AddPlayer(name)
		assert.NoError(t, err)
		assert.NotNil(t, player)
	}

	return g
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	g, err := New(nil, 2, 4, DefaultOptions())
	a.NoError(err)
	a.NotNil(g)
	a.NotEmpty(g.ID())
	a.Equal(0, g.NumPlayers())

	g, err = New(nil, 4, 2, DefaultOptions())
	a.Nil(g)
	a.EqualError(err, "invalid game configuration: minPlayers must be <= maxPlayers")

	g, err = New(nil, 0, 2, DefaultOptions())
	a.Nil(g)
	a.EqualError(err, "invalid game configuration: minPlayers must be >= 1")
}

func TestGame_AddPlayer(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t)

	alice, err := g.AddPlayer("alice")
	a.NoError(err)
	a.Equal("alice", alice.Name)
	a.Equal(1, g.NumPlayers())

	dup, err := g.AddPlayer("alice")
	a.Nil(dup)
	a.Equal(DuplicateNameError{Name: "alice"}, err)
	a.Equal(1, g.NumPlayers())

	for _, name := range []string{"bob", "carol", "dave"} {
		_, err := g.AddPlayer(name)
		a.NoError(err)
	}

	// a full table declines without an error
	extra, err := g.AddPlayer("erin")
	a.Nil(extra)
	a.NoError(err)
	a.Equal(4, g.NumPlayers())
}

func TestGame_RemovePlayer(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob")

	removed := g.RemovePlayer("alice")
	a.Equal("alice", removed.Name)
	a.Equal(1, g.NumPlayers())

	a.Nil(g.RemovePlayer("nobody"))
	a.Equal(1, g.NumPlayers())

	// the seat opens back up
	player, err := g.AddPlayer("alice")
	a.NoError(err)
	a.NotNil(player)
}

func TestGame_DealCards(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob", "carol")

	a.NoError(g.DealCards(5))
	a.Equal(52-15, g.deck.CardsLeft())

	for _, player := range g.players {
		a.Equal(5, len(player.hand))
		for i := 1; i < len(player.hand); i++ {
			a.LessOrEqual(player.hand[i-1].ID(), player.hand[i].ID())
		}
	}

	// dealing twice deals twice
	a.NoError(g.DealCards(5))
	a.Equal(52-30, g.deck.CardsLeft())
	a.Equal(10, len(g.players[0].hand))

	// not enough cards left: nothing is dealt
	err := g.DealCards(10)
	a.Equal(InsufficientCardsError{Need: 30, Have: 22}, err)
	a.Equal(22, g.deck.CardsLeft())
	a.Equal(10, len(g.players[0].hand))
}

func TestGame_DealCards_notReady(t *testing.T) {
	g := newTestGame(t, "alice")

	err := g.DealCards(5)
	assert.Equal(t, CapacityError{Min: 2, Max: 4, Got: 1}, err)
	assert.Equal(t, 52, g.deck.CardsLeft())
}

func TestGame_PlayToTable(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob")
	a.NoError(g.DealCards(3))

	err := g.PlayToTable(5, []int{0})
	a.Equal(InvalidPlayerError{Index: 5}, err)

	a.NoError(g.PlayToTable(0, []int{0}))
	a.Equal(1, len(g.Table()))
	a.Equal(2, len(g.players[0].hand))

	// group play lands in index order
	a.NoError(g.PlayToTable(1, []int{1, 0}))
	a.Equal(3, len(g.Table()))
	a.Equal(1, len(g.players[1].hand))
}

func TestGame_PlayToTable_parseHook(t *testing.T) {
	a := assert.New(t)

	g, err := New(nil, 1, 2, Options{
		Seed: 1,
		ParseCard: func(c *deck.Card) *deck.Card {
			return &deck.Card{Rank: deck.Ace, Suit: deck.Spades}
		},
	})
	a.NoError(err)

	_, err = g.AddPlayer("alice")
	a.NoError(err)
	a.NoError(g.DealCards(1))

	a.NoError(g.PlayToTable(0, []int{0}))
	a.Equal("14s", deck.CardsToString(g.Table()))
}

func TestGame_CaptureFor(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob")
	a.NoError(g.DealCards(2))

	a.NoError(g.PlayToTable(0, []int{0}))
	a.NoError(g.PlayToTable(1, []int{0}))

	err := g.CaptureFor(9)
	a.Equal(InvalidPlayerError{Index: 9}, err)

	a.NoError(g.CaptureFor(1))
	a.Equal(0, len(g.Table()))
	a.Equal(2, len(g.players[1].captured))
	a.Equal(0, len(g.players[0].captured))
}

func TestGame_Restart(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob")
	a.NoError(g.DealCards(5))
	a.NoError(g.PlayToTable(0, []int{0}))

	err := g.RestartSafely()
	a.Equal(NonEmptyHandError{Name: "alice"}, err)

	// players still hold cards, so only the dangerous restart works
	before := g.deck.HashCode()
	g.RestartDangerously()
	a.Equal(52, g.deck.CardsLeft())
	a.NotEqual(before, g.deck.HashCode())
	a.Equal(0, len(g.Table()))
	for _, player := range g.players {
		a.Equal(0, len(player.hand))
		a.Equal(0, len(player.captured))
	}

	// with empty hands the safe restart goes through
	a.NoError(g.RestartSafely())
	a.Equal(52, g.deck.CardsLeft())
}

// every card stays in exactly one of deck, hands, table or captured piles
func TestGame_cardConservation(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob", "carol")

	count := func() int {
		total := g.deck.CardsLeft() + len(g.table)
		for _, player := range g.players {
			total += len(player.hand) + len(player.captured)
		}
		return total
	}

	a.Equal(52, count())

	a.NoError(g.DealCards(5))
	a.Equal(52, count())

	a.NoError(g.PlayToTable(0, []int{0}))
	a.NoError(g.PlayToTable(1, []int{2, 3}))
	a.Equal(52, count())

	a.NoError(g.CaptureFor(2))
	a.Equal(52, count())

	g.RestartDangerously()
	a.Equal(52, count())
}
