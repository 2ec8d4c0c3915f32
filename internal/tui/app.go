package tui

import (
	"fmt"
	"log/slog"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"

	"termjack/internal/game"
	"termjack/internal/player"
)

// App runs one terminal session: a single round controller, redrawn in
// place after every key press.
type App struct {
	round  *game.Round
	tally  *player.Player
	area   *pterm.AreaPrinter
	logger *slog.Logger
}

func New(logger *slog.Logger, opts ...game.Option) *App {
	a := &App{
		tally:  &player.Player{},
		logger: logger,
	}
	opts = append(opts,
		game.WithLogger(logger),
		game.OnResolve(a.record),
	)
	a.round = game.NewRound(opts...)
	return a
}

func (a *App) record(res game.Result) {
	a.tally.Record(res.Outcome)
	a.logger.Info("hand finished",
		"round", res.RoundID,
		"outcome", res.Outcome,
		"hands", a.tally.Games)
}

// Tally returns the session counters so far.
func (a *App) Tally() player.Player {
	return *a.tally
}

// Handle applies the action bound to k and reports whether the session is
// over.
func (a *App) Handle(k keys.Key) (quit bool) {
	action := ActionForKey(k)
	a.logger.Debug("key", "key", k.String(), "action", action, "phase", a.round.Phase())
	return a.round.Apply(action)
}

func (a *App) Screen() (string, error) {
	return Render(a.round, *a.tally)
}

// Run blocks until the player quits.
func (a *App) Run() error {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return fmt.Errorf("start screen: %w", err)
	}
	a.area = area
	defer area.Stop()

	if err := a.draw(); err != nil {
		return err
	}

	return keyboard.Listen(func(k keys.Key) (stop bool, err error) {
		if a.Handle(k) {
			return true, nil
		}
		return false, a.draw()
	})
}

func (a *App) draw() error {
	screen, err := a.Screen()
	if err != nil {
		return err
	}
	a.area.Update(screen)
	return nil
}
