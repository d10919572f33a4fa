package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"tricktable/pkg/deck"
)

// Game orchestrates players, the table and the deck.
// It is not safe for concurrent use; give each game its own goroutine or lock.
type Game struct {
	id         string
	minPlayers int
	maxPlayers int
	options    Options
	players    []*Player
	table      []*deck.Card
	deck       *deck.Deck

	logger  logrus.FieldLogger
	logChan chan []*LogMessage
}

// New returns a new game with a freshly shuffled deck
func New(logger logrus.FieldLogger, minPlayers, maxPlayers int, opts Options) (*Game, error) {
	if minPlayers < 1 {
		return nil, ConfigurationError{Reason: "minPlayers must be >= 1"}
	}

	if minPlayers > maxPlayers {
		return nil, ConfigurationError{Reason: "minPlayers must be <= maxPlayers"}
	}

	nDecks := opts.NDecks
	if nDecks == 0 {
		nDecks = 1
	}

	if nDecks < 0 {
		return nil, ConfigurationError{Reason: "nDecks must be >= 1"}
	}

	opts.NDecks = nDecks

	d := deck.NewNDecks(nDecks)
	if opts.Seed != 0 {
		d.SetSeed(opts.Seed)
	}
	d.Shuffle()

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	g := &Game{
		id:         uuid.New().String(),
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
		options:    opts,
		players:    make([]*Player, 0, maxPlayers),
		table:      make([]*deck.Card, 0),
		deck:       d,
		logger:     logger.WithField("game", "tricktable"),
		logChan:    make(chan []*LogMessage, 256),
	}

	g.sendLogMessages(newLogMessage("", nil, "New game started"))
	return g, nil
}

// ID returns the game's unique identifier.
// The identifier survives restarts.
func (g *Game) ID() string {
	return g.id
}

// NumPlayers returns the number of seated players
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// Table returns a shallow clone of the cards currently in play
func (g *Game) Table() []*deck.Card {
	return append([]*deck.Card{}, g.table...)
}

// checkReady errors unless the seated player count is within bounds
func (g *Game) checkReady() error {
	if len(g.players) < g.minPlayers || len(g.players) > g.maxPlayers {
		return CapacityError{
			Min: g.minPlayers,
			Max: g.maxPlayers,
			Got: len(g.players),
		}
	}

	return nil
}

func (g *Game) playerIndex(name string) int {
	return slices.IndexFunc(g.players, func(p *Player) bool {
		return p.Name == name
	})
}

// PlayerAt returns the player at the given seat index
func (g *Game) PlayerAt(index int) (*Player, error) {
	if index < 0 || index >= len(g.players) {
		return nil, InvalidPlayerError{Index: index}
	}

	return g.players[index], nil
}

// AddPlayer seats a new player at the next index.
// A duplicate name is an error. A full table declines with (nil, nil) so
// callers can tell "no seat left" apart from a bad request.
func (g *Game) AddPlayer(name string) (*Player, error) {
	if g.playerIndex(name) >= 0 {
		return nil, DuplicateNameError{Name: name}
	}

	if len(g.players) >= g.maxPlayers {
		return nil, nil
	}

	player := NewPlayer(name)
	g.players = append(g.players, player)

	g.logger.WithField("player", name).Debug("player seated")
	g.sendLogMessages(newLogMessage(name, nil, "{} took seat %d", len(g.players)-1))

	return player, nil
}

// RemovePlayer removes and returns the first player with the given name,
// or nil if no player matches
func (g *Game) RemovePlayer(name string) *Player {
	i := g.playerIndex(name)
	if i < 0 {
		return nil
	}

	player := g.players[i]
	g.players = append(g.players[:i], g.players[i+1:]...)

	g.logger.WithField("player", name).Debug("player removed")
	g.sendLogMessages(newLogMessage(name, nil, "{} left the table"))

	return player
}

// DealCards deals nCards to every player, round-robin, one card per player
// per round. The deck is checked up front so a short deck deals nothing.
func (g *Game) DealCards(nCards int) error {
	if err := g.checkReady(); err != nil {
		return err
	}

	need := nCards * len(g.players)
	if !g.deck.CanDraw(need) {
		return InsufficientCardsError{
			Need: need,
			Have: g.deck.CardsLeft(),
		}
	}

	for round := 0; round < nCards; round++ {
		for _, player := range g.players {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			if err := player.AddCardToHand(card); err != nil {
				return err
			}
		}
	}

	g.logger.WithFields(logrus.Fields{
		"cards":   nCards,
		"players": len(g.players),
	}).Debug("dealt cards")
	g.sendLogMessages(newLogMessage("", nil, "Dealt %d cards to %d players", nCards, len(g.players)))

	return nil
}

// PlayToTable plays the cards at the given hand indices for the player at
// playerIndex, transforming each through the configured ParseCard hook
func (g *Game) PlayToTable(playerIndex int, cardIndices []int) error {
	if err := g.checkReady(); err != nil {
		return err
	}

	player, err := g.PlayerAt(playerIndex)
	if err != nil {
		return err
	}

	before := len(g.table)
	if err := player.PlayFromHand(cardIndices, &g.table, g.options.ParseCard); err != nil {
		return err
	}

	for _, card := range g.table[before:] {
		g.logger.WithFields(logrus.Fields{
			"player": player.Name,
			"card":   card.String(),
		}).Debug("card played")
		g.sendLogMessages(newLogMessage(player.Name, card, "{} played a card"))
	}

	return nil
}

// CaptureFor moves the entire table into the captured pile of the player at
// the given seat
func (g *Game) CaptureFor(playerIndex int) error {
	if err := g.checkReady(); err != nil {
		return err
	}

	player, err := g.PlayerAt(playerIndex)
	if err != nil {
		return err
	}

	count := len(g.table)
	player.CaptureCards(&g.table)

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"cards":  count,
	}).Debug("cards captured")
	g.sendLogMessages(newLogMessage(player.Name, nil, "{} captured %d cards", count))

	return nil
}

// RestartDangerously clears every hand, every captured pile and the table,
// and reshuffles a full deck. It never fails.
func (g *Game) RestartDangerously() {
	for _, player := range g.players {
		player.ClearCardsDangerously()
	}

	g.table = g.table[:0]
	g.deck.Initialize()

	g.logger.Debug("game restarted")
	g.sendLogMessages(newLogMessage("", nil, "The game restarted"))
}

// RestartSafely restarts the game only if no player still holds cards
func (g *Game) RestartSafely() error {
	for _, player := range g.players {
		if len(player.hand) > 0 {
			return NonEmptyHandError{Name: player.Name}
		}
	}

	g.RestartDangerously()
	return nil
}
