package game

import (
	"tricktable/pkg/deck"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	ID          string         `json:"id"`
	Seed        int64          `json:"seed"`
	MinPlayers  int            `json:"minPlayers"`
	MaxPlayers  int            `json:"maxPlayers"`
	Players     []*PlayerState `json:"players"`
	Table       []*deck.Card   `json:"table"`
	CardsInDeck int            `json:"cardsInDeck"`
}

// PlayerState is the state of an individual player
// This is safe for all players to see
type PlayerState struct {
	Name          string `json:"name"`
	Seat          int    `json:"seat"`
	CardsInHand   int    `json:"cardsInHand"`
	CardsCaptured int    `json:"cardsCaptured"`
}

// TrickState is the game state plus the trick bookkeeping
type TrickState struct {
	*GameState
	WhoStartsRound int       `json:"whoStartsRound"`
	TrumpSuit      deck.Suit `json:"trumpSuit"`
	TrumpRank      int       `json:"trumpRank"`
	LeadSuit       deck.Suit `json:"leadSuit"`
	CurrentTurn    int       `json:"currentTurn"`
	TrickComplete  bool      `json:"trickComplete"`
}

// State returns the game state, computed on demand from canonical state
func (g *Game) State() *GameState {
	players := make([]*PlayerState, len(g.players))
	for i, player := range g.players {
		players[i] = &PlayerState{
			Name:          player.Name,
			Seat:          i,
			CardsInHand:   len(player.hand),
			CardsCaptured: len(player.captured),
		}
	}

	return &GameState{
		ID:          g.id,
		Seed:        g.deck.Seed(),
		MinPlayers:  g.minPlayers,
		MaxPlayers:  g.maxPlayers,
		Players:     players,
		Table:       g.Table(),
		CardsInDeck: g.deck.CardsLeft(),
	}
}

// State returns the trick game state
func (g *TrickGame) State() *TrickState {
	leadSuit, _ := g.LeadSuit()

	currentTurn := NoTurn
	trickComplete := false
	if turn, err := g.WhosTurn(); err == nil {
		currentTurn = turn
		trickComplete = turn == NoTurn
	}

	return &TrickState{
		GameState:      g.Game.State(),
		WhoStartsRound: g.whoStartsRound,
		TrumpSuit:      g.trumpSuit,
		TrumpRank:      g.trumpRank,
		LeadSuit:       leadSuit,
		CurrentTurn:    currentTurn,
		TrickComplete:  trickComplete,
	}
}
