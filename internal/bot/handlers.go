package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"termjack/internal/game"
	"termjack/internal/player"
)

// Sender is the part of *tgbotapi.BotAPI the handlers use.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot    Sender
	tables *Manager
	logger *slog.Logger
}

func NewHandler(bot Sender, tables *Manager, logger *slog.Logger) *Handler {
	return &Handler{
		bot:    bot,
		tables: tables,
		logger: logger,
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("failed to send message", "chat", chatID, "error", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("failed to send message", "chat", chatID, "error", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("failed to answer callback", "error", err)
	}
}

func formatCards(v game.HandView) string {
	parts := make([]string, 0, v.Len())
	for i, c := range v.Cards() {
		if v.Hidden(i) {
			parts = append(parts, "??")
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func outcomeText(o game.Outcome) string {
	switch o {
	case game.PlayerWin:
		return "🎉 You win!"
	case game.DealerWin:
		return "😔 Dealer wins!"
	case game.Push:
		return "🤝 Push!"
	case game.Bust:
		return "💥 Bust!"
	}
	return o.String()
}

// formatRound renders the table as a chat message. The dealer's value stays
// hidden until the hand is revealed.
func formatRound(r *game.Round) string {
	p, d := r.Player(), r.Dealer()

	dealer := formatCards(d)
	if d.Status() == game.Revealed {
		dealer = fmt.Sprintf("%s (%d)", dealer, d.Value())
	}

	msg := fmt.Sprintf("🎴 You: %s (%d) · %s\n🃏 Dealer: %s · %s",
		formatCards(p), p.Value(), p.Status(), dealer, d.Status())

	if o, ok := r.Outcome(); ok {
		msg += fmt.Sprintf("\n\n%s\nYou: %d Dealer: %d", outcomeText(o), p.Value(), d.Value())
	}
	return msg
}

func formatTally(t player.Player) string {
	return fmt.Sprintf(
		"📊 This session:\n"+
			"🎮 Hands: %d\n"+
			"✅ Won: %d (%.1f%%)\n"+
			"❌ Lost: %d (💥 bust %d)\n"+
			"🤝 Push: %d",
		t.Games, t.Wins, t.WinRate(), t.Losses, t.Busts, t.Draws)
}

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Welcome to Blackjack!\n\n"+
			"/play - deal a hand\n"+
			"/stats - this session's results\n"+
			"/help - rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Rules:\n\n"+
			"🎯 Beat the dealer without going over 21\n\n"+
			"📊 Values:\n"+
			"• 2-10 - face value\n"+
			"• J, Q, K - 10\n"+
			"• A - 11, or 1 if 11 would bust\n\n"+
			"🎮 Actions:\n"+
			"• Hit - take a card (the dealer plays one step too)\n"+
			"• Hold - stand; the dealer draws below 16\n\n"+
			"The dealer's first card stays face down until the hand ends.")
}

func (h *Handler) HandleStats(chatID int64) {
	s := h.tables.Get(chatID)
	if s == nil {
		h.send(chatID, "🏆 No hands played yet. Use /play")
		return
	}
	s.With(func(_ *game.Round, t *player.Player) {
		h.send(chatID, formatTally(*t))
	})
}

// HandlePlay deals a hand. An unfinished hand is shown again instead of
// being thrown away.
func (h *Handler) HandlePlay(chatID int64) {
	s, created := h.tables.Open(chatID)
	s.With(func(r *game.Round, _ *player.Player) {
		if !created {
			if r.Phase() == game.PlayingHand {
				h.sendWithKeyboard(chatID, "⚠️ Finish this hand first.\n\n"+formatRound(r), GameKeyboard())
				return
			}
			r.Next()
		}
		h.logger.Debug("hand dealt", "chat", chatID, "round", r.ID())
		h.sendWithKeyboard(chatID, formatRound(r), KeyboardFor(r.Phase()))
	})
}

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	action, ok := callbackActions[callback.Data]
	if !ok {
		h.answerCallback(callback.ID, "Unknown action")
		return
	}

	s := h.tables.Get(chatID)
	if s == nil {
		h.answerCallback(callback.ID, "No hand in play. Use /play")
		return
	}

	var quit bool
	s.With(func(r *game.Round, t *player.Player) {
		if quit = r.Apply(action); quit {
			h.send(chatID, "👋 Thanks for playing!\n\n"+formatTally(*t))
			return
		}
		h.sendWithKeyboard(chatID, formatRound(r), KeyboardFor(r.Phase()))
	})
	if quit {
		h.tables.Delete(chatID)
	}

	h.answerCallback(callback.ID, "")
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	switch strings.ToLower(parts[0]) {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID)
	case "/stats":
		h.HandleStats(chatID)
	}
}
