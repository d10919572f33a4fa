package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"tricktable/internal/util"
)

// Config provides configuration for the trick table
type Config struct {
	loaded       bool
	MinPlayers   int    `yaml:"minPlayers" envconfig:"min_players"`
	MaxPlayers   int    `yaml:"maxPlayers" envconfig:"max_players"`
	NDecks       int    `yaml:"nDecks" envconfig:"n_decks"`
	CardsPerHand int    `yaml:"cardsPerHand" envconfig:"cards_per_hand"`
	Seed         int64  `yaml:"seed" envconfig:"seed"`
	TrumpSuit    string `yaml:"trumpSuit" envconfig:"trump_suit"`
	TrumpRank    int    `yaml:"trumpRank" envconfig:"trump_rank"`
	Verbose      bool   `yaml:"verbose" envconfig:"verbose"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and the environment apply
func Load() error {
	config = Config{
		MinPlayers:   2,
		MaxPlayers:   4,
		NDecks:       1,
		CardsPerHand: 5,
	}

	configFile := util.Getenv("TT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("tt", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
