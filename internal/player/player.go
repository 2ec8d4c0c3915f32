package player

import (
	"fmt"

	"termjack/internal/game"
)

// Player keeps the running tally of one session. Nothing is persisted; a
// new session starts from zero.
type Player struct {
	Wins   int
	Losses int
	Draws  int
	Busts  int
	Games  int
}

// Record counts a resolved hand. A bust also counts as a loss.
func (p *Player) Record(o game.Outcome) {
	switch o {
	case game.PlayerWin:
		p.AddWin()
	case game.DealerWin:
		p.AddLoss()
	case game.Push:
		p.AddDraw()
	case game.Bust:
		p.AddBust()
	}
}

func (p *Player) AddWin() {
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

func (p *Player) AddDraw() {
	p.Draws++
	p.Games++
}

func (p *Player) AddBust() {
	p.Busts++
	p.AddLoss()
}

func (p Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

func (p Player) String() string {
	return fmt.Sprintf("Hands: %d  Won: %d  Lost: %d (bust %d)  Push: %d  Win rate: %.0f%%",
		p.Games, p.Wins, p.Losses, p.Busts, p.Draws, p.WinRate())
}
