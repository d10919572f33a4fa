package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"tricktable/internal/config"
	"tricktable/internal/util"
	"tricktable/pkg/deck"
	"tricktable/pkg/game"
)

var nPlayers = flag.Int("players", 4, "the number of players to seat")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	g, err := game.NewTrickGame(nil, cfg.MinPlayers, cfg.MaxPlayers, game.Options{
		NDecks: cfg.NDecks,
		Seed:   cfg.Seed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	seatPlayers(g, *nPlayers)

	if cfg.TrumpSuit != "" {
		g.SetTrump(deck.Suit(cfg.TrumpSuit), cfg.TrumpRank)
	}

	if err := g.DealCards(cfg.CardsPerHand); err != nil {
		logrus.WithError(err).Fatal("could not deal")
	}

	if err := g.SetWhoStartsRound(0); err != nil {
		logrus.WithError(err).Fatal("could not pick a leader")
	}

	for trickNo := 1; trickNo <= cfg.CardsPerHand; trickNo++ {
		winner := playTrick(g)

		logrus.WithFields(logrus.Fields{
			"trick":  trickNo,
			"winner": mustPlayer(g, winner).Name,
		}).Info("trick decided")

		if err := g.CaptureFor(winner); err != nil {
			logrus.WithError(err).Fatal("could not capture trick")
		}

		// the winner leads the next trick
		if err := g.SetWhoStartsRound(winner); err != nil {
			logrus.WithError(err).Fatal("could not pick a leader")
		}
	}

	for _, player := range g.State().Players {
		logrus.WithFields(logrus.Fields{
			"player":   player.Name,
			"captured": player.CardsCaptured,
		}).Info("final score")
	}
}

func seatPlayers(g *game.TrickGame, n int) {
	for g.NumPlayers() < n {
		player, err := g.AddPlayer(util.RandomName())
		if err != nil {
			// random names can collide; try another
			continue
		}

		if player == nil {
			logrus.WithField("players", g.NumPlayers()).Warn("table is full")
			break
		}
	}
}

// playTrick plays one card per seat in turn order and returns the winning seat
func playTrick(g *game.TrickGame) int {
	for {
		turn, err := g.WhosTurn()
		if err != nil {
			logrus.WithError(err).Fatal("could not determine turn")
		}

		if turn == game.NoTurn {
			break
		}

		hand := mustPlayer(g, turn).Hand()
		logrus.WithFields(logrus.Fields{
			"player": mustPlayer(g, turn).Name,
			"card":   hand[0].String(),
		}).Info("plays")

		if err := g.PlayToTrick(turn, []int{0}); err != nil {
			logrus.WithError(err).Fatal("could not play card")
		}
	}

	winner, err := g.TrickWinner()
	if err != nil {
		logrus.WithError(err).Fatal("could not resolve trick")
	}

	return winner
}

func mustPlayer(g *game.TrickGame, seat int) *game.Player {
	player, err := g.PlayerAt(seat)
	if err != nil {
		logrus.WithError(err).Fatal("bad seat")
	}

	return player
}

func setupLogger() {
	if config.Instance().Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
