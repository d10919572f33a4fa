package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is an error when a malformed card is handed to a deck or hand
var ErrInvalidCard = errors.New("not a valid card")

// Suit represents a card suit
type Suit string

// suit constants, in ascending sort order
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

const ranksPerSuit = 13

// maxCardID is the largest value ID() can return
const maxCardID = 4*ranksPerSuit - 1

// trick-rank tiers. A card's trick rank is its tier base plus its rank,
// so any trump beats any lead-suit card and any lead-suit card beats the rest.
const (
	tierTrumpRank = 300
	tierTrumpSuit = 200
	tierLeadSuit  = 100
)

func suitIndex(suit Suit) int {
	switch suit {
	case Clubs:
		return 0
	case Diamonds:
		return 1
	case Hearts:
		return 2
	case Spades:
		return 3
	}

	return -1
}

// ID returns the card's identity for ordering and equality.
// IDs are suit-major, so sorting a hand by ID groups it by suit.
// Duplicate cards from a multi-deck shoe share an ID.
func (c *Card) ID() int {
	return suitIndex(c.Suit)*ranksPerSuit + c.Rank - 2
}

// Valid returns true if the card has a recognized suit and rank
func (c *Card) Valid() bool {
	return c != nil && suitIndex(c.Suit) >= 0 && c.Rank >= 2 && c.Rank <= Ace
}

// TrickRank returns the card's value for deciding a trick.
// A card matching trumpRank outranks the trump suit, which outranks the lead
// suit, which outranks everything else. Within a tier, the higher rank wins.
// Pass 0 for trumpRank and "" for trumpSuit when the game plays without them.
func (c *Card) TrickRank(leadSuit, trumpSuit Suit, trumpRank int) int {
	switch {
	case trumpRank > 0 && c.Rank == trumpRank:
		return tierTrumpRank + c.Rank
	case trumpSuit != "" && c.Suit == trumpSuit:
		return tierTrumpSuit + c.Rank
	case c.Suit == leadSuit:
		return tierLeadSuit + c.Rank
	}

	return c.Rank
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
