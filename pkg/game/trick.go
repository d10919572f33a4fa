package game

import (
	"github.com/sirupsen/logrus"

	"tricktable/pkg/deck"
)

// NoTurn is the seat WhosTurn returns when nobody may play
const NoTurn = -1

// TrickGame layers trick semantics on top of a Game: turn order, lead suit
// and trick-winner resolution. The trick is a view over the game's table.
type TrickGame struct {
	*Game
	whoStartsRound int
	trumpSuit      deck.Suit
	trumpRank      int
}

// NewTrickGame returns a new trick-taking game
func NewTrickGame(logger logrus.FieldLogger, minPlayers, maxPlayers int, opts Options) (*TrickGame, error) {
	g, err := New(logger, minPlayers, maxPlayers, opts)
	if err != nil {
		return nil, err
	}

	return &TrickGame{
		Game:           g,
		whoStartsRound: NoTurn,
	}, nil
}

// Trick returns a shallow clone of the cards in the current trick
func (g *TrickGame) Trick() []*deck.Card {
	return g.Table()
}

// SetWhoStartsRound sets the seat that leads the current trick
func (g *TrickGame) SetWhoStartsRound(seat int) error {
	if _, err := g.PlayerAt(seat); err != nil {
		return err
	}

	g.whoStartsRound = seat
	return nil
}

// WhoStartsRound returns the seat leading the current trick, or NoTurn if unset
func (g *TrickGame) WhoStartsRound() int {
	return g.whoStartsRound
}

// SetTrump sets the trump suit and, optionally, a trump rank that outranks it.
// Pass "" and 0 to play without trumps.
func (g *TrickGame) SetTrump(suit deck.Suit, rank int) {
	g.trumpSuit = suit
	g.trumpRank = rank
}

// TrumpSuit returns the trump suit, or "" when none is set
func (g *TrickGame) TrumpSuit() deck.Suit {
	return g.trumpSuit
}

// TrumpRank returns the trump rank, or 0 when none is set
func (g *TrickGame) TrumpRank() int {
	return g.trumpRank
}

// WhosTurn returns the seat whose turn it is.
// It errors with ErrRoundNotStarted until a leader is set, and returns
// NoTurn with no error once every seat has played into the trick.
// Turn order wraps around the table from the leading seat.
func (g *TrickGame) WhosTurn() (int, error) {
	if g.whoStartsRound == NoTurn {
		return NoTurn, ErrRoundNotStarted
	}

	if err := g.checkReady(); err != nil {
		return NoTurn, err
	}

	if len(g.table) >= len(g.players) {
		return NoTurn, nil
	}

	return (g.whoStartsRound + len(g.table)) % len(g.players), nil
}

// PlayToTrick plays like PlayToTable but only for the seat whose turn it is
func (g *TrickGame) PlayToTrick(playerIndex int, cardIndices []int) error {
	turn, err := g.WhosTurn()
	if err != nil {
		return err
	}

	if turn == NoTurn || turn != playerIndex {
		return ErrNotPlayersTurn
	}

	return g.PlayToTable(playerIndex, cardIndices)
}

// LeadSuit returns the suit of the first card played this trick.
// The second return is false while the trick is empty.
func (g *TrickGame) LeadSuit() (deck.Suit, bool) {
	if len(g.table) == 0 {
		return "", false
	}

	return g.table[0].Suit, true
}

// TrickWinner resolves the completed trick and returns the winning seat.
// Mid-trick it errors with ErrTrickNotComplete. The highest trick rank wins;
// on a tie the card played first keeps the trick.
func (g *TrickGame) TrickWinner() (int, error) {
	turn, err := g.WhosTurn()
	if err != nil {
		return NoTurn, err
	}

	if turn != NoTurn {
		return NoTurn, ErrTrickNotComplete
	}

	leadSuit, ok := g.LeadSuit()
	if !ok {
		return NoTurn, ErrTrickNotComplete
	}

	winningIndex := 0
	winningRank := g.table[0].TrickRank(leadSuit, g.trumpSuit, g.trumpRank)
	for i := 1; i < len(g.table); i++ {
		if rank := g.table[i].TrickRank(leadSuit, g.trumpSuit, g.trumpRank); rank > winningRank {
			winningIndex = i
			winningRank = rank
		}
	}

	return (g.whoStartsRound + winningIndex) % len(g.players), nil
}
