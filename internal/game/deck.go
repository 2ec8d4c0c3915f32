package game

import (
	"math/rand/v2"
	"time"
)

type Deck struct {
	cards []Card
	rng   *rand.Rand
}

func NewDeck() *Deck {
	now := uint64(time.Now().UnixNano())
	return newDeck(rand.New(rand.NewPCG(now, now>>17|1)))
}

// NewSeededDeck builds a deck whose shuffles, including the ones done on
// exhaustion, are reproducible for a given seed.
func NewSeededDeck(seed uint64) *Deck {
	return newDeck(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func newDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: Canonical(),
		rng:   rng,
	}
	d.Shuffle(1)
	return d
}

// Shuffle applies a uniform permutation passes times.
func (d *Deck) Shuffle(passes int) {
	for range max(passes, 1) {
		d.rng.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
}

// Draw takes the top card. An empty deck is silently replaced by a fresh
// shuffled one first, so Draw never fails.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		d.cards = Canonical()
		d.Shuffle(1)
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Deal draws a fresh two-card hand for role.
func (d *Deck) Deal(role Role) *Hand {
	return newHand(role, d.Draw(), d.Draw())
}
