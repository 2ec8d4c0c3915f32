package tui

import (
	"atomicgo.dev/keyboard/keys"

	"termjack/internal/game"
)

// ActionForKey maps a key press to a round action. Keys without a binding
// map to ActionNewRound, which the round ignores while a hand is in play.
func ActionForKey(k keys.Key) game.Action {
	switch k.Code {
	case keys.Escape, keys.CtrlC:
		return game.ActionQuit
	case keys.RuneKey:
		switch string(k.Runes) {
		case "1":
			return game.ActionHit
		case "2":
			return game.ActionHold
		case "q", "Q":
			return game.ActionQuit
		}
	}
	return game.ActionNewRound
}
