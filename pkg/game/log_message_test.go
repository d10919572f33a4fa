package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(g *Game) []*LogMessage {
	all := make([]*LogMessage, 0)
	for {
		select {
		case msgs := <-g.LogChan():
			all = append(all, msgs...)
		default:
			return all
		}
	}
}

func TestGame_LogChan(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t, "alice", "bob")
	a.NoError(g.DealCards(1))
	a.NoError(g.PlayToTable(0, []int{0}))

	msgs := drain(g)
	a.NotEmpty(msgs)

	last := msgs[len(msgs)-1]
	a.Equal([]string{"alice"}, last.Players)
	a.Equal(1, len(last.Cards))
	a.Equal("{} played a card", last.Message)
	a.NotEmpty(last.UUID)
	a.False(last.Time.IsZero())
}
