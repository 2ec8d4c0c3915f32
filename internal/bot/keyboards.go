package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"termjack/internal/game"
)

const (
	CallbackHit     = "hit"
	CallbackHold    = "hold"
	CallbackNewHand = "new_hand"
	CallbackQuit    = "quit"
)

// callbackActions maps button data to round actions.
var callbackActions = map[string]game.Action{
	CallbackHit:     game.ActionHit,
	CallbackHold:    game.ActionHold,
	CallbackNewHand: game.ActionNewRound,
	CallbackQuit:    game.ActionQuit,
}

func GameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData("✋ Hold", CallbackHold),
		),
	)
}

func EndGameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 New hand", CallbackNewHand),
			tgbotapi.NewInlineKeyboardButtonData("🚪 Quit", CallbackQuit),
		),
	)
}

// KeyboardFor picks the buttons that make sense in phase p.
func KeyboardFor(p game.Phase) tgbotapi.InlineKeyboardMarkup {
	if p == game.HandScoreScreen {
		return EndGameKeyboard()
	}
	return GameKeyboard()
}
