package game

import "math/rand/v2"

// stackedDeck returns a deck that deals draws in the given order. Once they
// run out it reshuffles like any other deck.
func stackedDeck(draws ...Card) *Deck {
	cards := make([]Card, len(draws))
	for i, c := range draws {
		cards[len(draws)-1-i] = c
	}
	return &Deck{cards: cards, rng: rand.New(rand.NewPCG(7, 11))}
}

func testHand(role Role, cards ...Card) *Hand {
	return &Hand{cards: cards, role: role, status: Active}
}

func card(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}
