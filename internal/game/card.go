package game

import "fmt"

type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}

var rankSymbols = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var rankPoints = [...]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}

// Points is the nominal value of the rank. Aces report 11; Value decides
// when one has to count as 1.
func (r Rank) Points() int {
	return rankPoints[r]
}

func (r Rank) Symbol() string {
	return rankSymbols[r]
}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

type Suit int

const (
	Spade Suit = iota
	Club
	Diamond
	Heart
)

type Color int

const (
	Black Color = iota
	Red
)

func (s Suit) Color() Color {
	if s == Diamond || s == Heart {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	}
	return "?"
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) Points() int {
	return c.Rank.Points()
}

// String renders the card as suit glyph plus rank symbol, e.g. "♥10".
func (c Card) String() string {
	return c.Suit.String() + c.Rank.Symbol()
}

// Canonical returns the 52 cards in fixed order: spades Two..Ace, then
// clubs, diamonds and hearts.
func Canonical() []Card {
	cards := make([]Card, 0, 52)
	for _, s := range []Suit{Spade, Club, Diamond, Heart} {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}
