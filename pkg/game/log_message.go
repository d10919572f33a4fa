package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tricktable/pkg/deck"
)

// LogMessage is a game event suitable for showing to every player
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Players []string     `json:"players"`
	Cards   []*deck.Card `json:"cards"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(playerName string, card *deck.Card, format string, a ...interface{}) *LogMessage {
	var players []string
	if playerName != "" {
		players = []string{playerName}
	}

	var cards []*deck.Card
	if card != nil {
		cards = append(cards, card)
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

func (g *Game) sendLogMessages(msg ...*LogMessage) {
	if g.logChan == nil {
		return
	}

	// drop rather than block if nobody is draining the channel
	select {
	case g.logChan <- msg:
	default:
	}
}

// LogChan returns a channel for receiving game log messages
func (g *Game) LogChan() <-chan []*LogMessage {
	return g.logChan
}
