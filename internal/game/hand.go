package game

import (
	"fmt"
	"strings"
)

type Role int

const (
	PlayerRole Role = iota
	DealerRole
)

func (r Role) String() string {
	if r == DealerRole {
		return "Dealer"
	}
	return "Player"
}

type Status int

const (
	Active Status = iota
	Held
	Revealed
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Held:
		return "Held"
	case Revealed:
		return "Revealed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Hand is an append-only run of cards owned by one role.
type Hand struct {
	cards  []Card
	role   Role
	status Status
}

func newHand(role Role, first, second Card) *Hand {
	return &Hand{
		cards:  []Card{first, second},
		role:   role,
		status: Active,
	}
}

func (h *Hand) Role() Role {
	return h.role
}

func (h *Hand) Status() Status {
	return h.status
}

func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Value() int {
	return Value(h.cards)
}

func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

func (h *Hand) IsActive() bool {
	return h.status == Active
}

// Hidden reports whether card i is face down: the dealer's first card stays
// hidden until the hand is revealed.
func (h *Hand) Hidden(i int) bool {
	return h.role == DealerRole && h.status != Revealed && i == 0
}

func (h *Hand) Hit(d *Deck) {
	if len(h.cards) < 2 {
		panic("game: hit on a hand that was never dealt")
	}
	h.cards = append(h.cards, d.Draw())
}

func (h *Hand) Hold() {
	h.status = Held
}

// DealerAction is one step of the dealer policy: hit below 16, hold
// otherwise.
func (h *Hand) DealerAction(d *Deck) {
	h.mustBeDealer("dealer action")
	if h.Value() < 16 {
		h.Hit(d)
	} else {
		h.Hold()
	}
}

func (h *Hand) Reveal() {
	h.mustBeDealer("reveal")
	h.status = Revealed
}

func (h *Hand) mustBeDealer(op string) {
	if h.role != DealerRole {
		panic(fmt.Sprintf("game: %s on a %s hand", op, h.role))
	}
}

func (h *Hand) String() string {
	var sb strings.Builder
	sb.WriteString("Hand: ")
	for _, c := range h.cards {
		sb.WriteString(c.String())
		sb.WriteString(", ")
	}
	fmt.Fprintf(&sb, "\nValue: %d", h.Value())
	return sb.String()
}

// HandView is the read-only side of a Hand handed to presentation code.
type HandView struct {
	h *Hand
}

func (v HandView) Cards() []Card { return v.h.Cards() }
func (v HandView) Len() int { return v.h.Len() }
func (v HandView) Role() Role { return v.h.Role() }
func (v HandView) Status() Status { return v.h.Status() }
func (v HandView) Value() int { return v.h.Value() }
func (v HandView) IsBust() bool { return v.h.IsBust() }
func (v HandView) IsActive() bool { return v.h.IsActive() }
func (v HandView) Hidden(i int) bool { return v.h.Hidden(i) }
