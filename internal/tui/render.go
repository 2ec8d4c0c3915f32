package tui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"termjack/internal/game"
	"termjack/internal/player"
)

// FaceDown fills the back of a hidden card.
const FaceDown = "▓"

const (
	cardWidth   = 9
	cardsPerRow = 6
)

var (
	blackCard = pterm.NewStyle(pterm.FgBlack, pterm.BgWhite)
	redCard   = pterm.NewStyle(pterm.FgRed, pterm.BgWhite)
	backCard  = pterm.NewStyle(pterm.FgBlue, pterm.BgWhite)
)

// Table is what the screen needs from a round. *game.Round satisfies it.
type Table interface {
	Phase() game.Phase
	Outcome() (game.Outcome, bool)
	Player() game.HandView
	Dealer() game.HandView
}

// Render draws the whole screen for the current state of t.
func Render(t Table, tally player.Player) (string, error) {
	var sb strings.Builder
	sb.WriteString(pterm.DefaultHeader.Sprint("Blackjack"))
	sb.WriteString("\n")

	hands, err := pterm.DefaultPanel.WithPanels(pterm.Panels{{
		{Data: handBox(t.Player())},
		{Data: handBox(t.Dealer())},
	}}).Srender()
	if err != nil {
		return "", fmt.Errorf("render hands: %w", err)
	}
	sb.WriteString(hands)

	if o, ok := t.Outcome(); ok {
		sb.WriteString("\n")
		sb.WriteString(resultBox(o, t.Player().Value(), t.Dealer().Value()))
	}

	sb.WriteString("\n")
	sb.WriteString(pterm.FgGray.Sprint(tally.String()))
	sb.WriteString("\n")
	return sb.String(), nil
}

func handBox(v game.HandView) string {
	var sb strings.Builder
	sb.WriteString(cardRows(v))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Status: %s\n", v.Status())

	switch {
	case v.Role() == game.PlayerRole:
		fmt.Fprintf(&sb, "Value: %d\n\n", v.Value())
		sb.WriteString("1) Hit   2) Hold   q) Quit")
	case v.Status() == game.Revealed:
		fmt.Fprintf(&sb, "Value: %d", v.Value())
	}

	return pterm.DefaultBox.
		WithTitle(v.Role().String()).
		WithTitleTopLeft().
		WithHorizontalPadding(2).
		Sprint(sb.String())
}

// cardRows lays the cards of v out side by side, wrapping after six.
func cardRows(v game.HandView) string {
	cards := v.Cards()
	var rows []string
	for start := 0; start < len(cards); start += cardsPerRow {
		end := min(start+cardsPerRow, len(cards))
		var faces [][]string
		for i := start; i < end; i++ {
			if v.Hidden(i) {
				faces = append(faces, faceDown())
			} else {
				faces = append(faces, cardFace(cards[i]))
			}
		}
		rows = append(rows, joinFaces(faces))
	}
	return strings.Join(rows, "\n")
}

func joinFaces(faces [][]string) string {
	if len(faces) == 0 {
		return ""
	}
	lines := make([]string, len(faces[0]))
	for i := range lines {
		parts := make([]string, len(faces))
		for j, f := range faces {
			parts[j] = f[i]
		}
		lines[i] = strings.Join(parts, "  ")
	}
	return strings.Join(lines, "\n")
}

func cardFace(c game.Card) []string {
	style := blackCard
	if c.Suit.Color() == game.Red {
		style = redCard
	}
	raw := []string{
		"╭─────────╮",
		fmt.Sprintf("│%-9s│", c.Suit.String()+c.Rank.Symbol()),
		"│         │",
		"│" + center(c.Rank.String(), cardWidth) + "│",
		"│         │",
		fmt.Sprintf("│%9s│", c.Rank.Symbol()+c.Suit.String()),
		"╰─────────╯",
	}
	return paint(style, raw)
}

func faceDown() []string {
	back := strings.Repeat(FaceDown, cardWidth)
	raw := []string{"╭─────────╮"}
	for range 5 {
		raw = append(raw, "│"+back+"│")
	}
	raw = append(raw, "╰─────────╯")
	return paint(backCard, raw)
}

func paint(style *pterm.Style, lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Sprint(l)
	}
	return out
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func resultBox(o game.Outcome, playerValue, dealerValue int) string {
	body := fmt.Sprintf("%s\nYou: %d Dealer: %d\n\nAny) New Hand   q) Quit",
		outcomeColor(o).Sprint(o.String()), playerValue, dealerValue)
	return pterm.DefaultBox.
		WithTitle("Hand Result").
		WithTitleTopCenter().
		WithHorizontalPadding(4).
		Sprint(body)
}

func outcomeColor(o game.Outcome) pterm.Color {
	switch o {
	case game.PlayerWin:
		return pterm.FgGreen
	case game.Push:
		return pterm.FgYellow
	}
	return pterm.FgRed
}
