package game

import (
	"log/slog"

	"github.com/google/uuid"
)

type Phase int

const (
	PlayingHand Phase = iota
	HandScoreScreen
)

func (p Phase) String() string {
	if p == HandScoreScreen {
		return "HandScoreScreen"
	}
	return "PlayingHand"
}

type Outcome int

const (
	PlayerWin Outcome = iota
	DealerWin
	Push
	Bust
)

func (o Outcome) String() string {
	switch o {
	case PlayerWin:
		return "PlayerWin"
	case DealerWin:
		return "DealerWin"
	case Push:
		return "Push"
	case Bust:
		return "Bust"
	}
	return "Unknown"
}

// Action is an input the round understands. Mapping keys or buttons to
// actions is left to the frontends.
type Action int

const (
	ActionHit Action = iota
	ActionHold
	ActionNewRound
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionHold:
		return "hold"
	case ActionNewRound:
		return "new round"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// Result describes a resolved round.
type Result struct {
	RoundID     uuid.UUID
	Outcome     Outcome
	PlayerValue int
	DealerValue int
}

type Option func(*Round)

// WithDeck makes the round draw from d instead of a fresh random deck.
func WithDeck(d *Deck) Option {
	return func(r *Round) {
		r.deck = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Round) {
		r.logger = l
	}
}

// OnResolve registers fn to be called once each time a round reaches the
// score screen.
func OnResolve(fn func(Result)) Option {
	return func(r *Round) {
		r.onResolve = fn
	}
}

// Round owns the deck and both hands and drives the play/reveal/score loop.
// It is not safe for concurrent use.
type Round struct {
	id      uuid.UUID
	deck    *Deck
	player  *Hand
	dealer  *Hand
	phase   Phase
	outcome Outcome

	logger    *slog.Logger
	onResolve func(Result)
}

func NewRound(opts ...Option) *Round {
	r := &Round{}
	for _, opt := range opts {
		opt(r)
	}
	if r.deck == nil {
		r.deck = NewDeck()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	r.deal()
	return r
}

func (r *Round) deal() {
	r.id = uuid.New()
	r.player = r.deck.Deal(PlayerRole)
	r.dealer = r.deck.Deal(DealerRole)
	r.phase = PlayingHand
	r.logger.Debug("hand dealt",
		"round", r.id,
		"player", r.player.Value(),
		"remaining", r.deck.Remaining())
}

func (r *Round) ID() uuid.UUID {
	return r.id
}

func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome is only meaningful on the score screen; ok is false while the
// hand is still being played.
func (r *Round) Outcome() (o Outcome, ok bool) {
	if r.phase != HandScoreScreen {
		return 0, false
	}
	return r.outcome, true
}

func (r *Round) Player() HandView {
	return HandView{h: r.player}
}

func (r *Round) Dealer() HandView {
	return HandView{h: r.dealer}
}

// Apply runs a single action to completion and reports whether the session
// should end. On the score screen every action other than quit deals a new
// hand.
func (r *Round) Apply(a Action) (quit bool) {
	if a == ActionQuit {
		return true
	}

	switch r.phase {
	case PlayingHand:
		switch a {
		case ActionHit:
			r.Hit()
		case ActionHold:
			r.Hold()
		}
	case HandScoreScreen:
		r.Next()
	}
	return false
}

// Hit draws for the player, then lets the dealer take one policy step.
func (r *Round) Hit() {
	if r.phase != PlayingHand {
		return
	}
	r.player.Hit(r.deck)
	r.dealer.DealerAction(r.deck)
	r.evaluate()
}

// Hold stands the player and plays the dealer out. The loop ends once the
// dealer holds or busts; at most 21 hits are possible before a bust.
func (r *Round) Hold() {
	if r.phase != PlayingHand {
		return
	}
	r.player.Hold()
	for r.dealer.IsActive() && !r.dealer.IsBust() {
		r.dealer.DealerAction(r.deck)
		r.evaluate()
	}
	r.evaluate()
}

// Next deals a new hand from the score screen.
func (r *Round) Next() {
	if r.phase != HandScoreScreen {
		return
	}
	r.deal()
}

func (r *Round) evaluate() {
	if r.phase != PlayingHand {
		return
	}

	switch {
	case r.player.IsBust():
		r.resolve(Bust)
	case r.dealer.IsBust():
		r.resolve(PlayerWin)
	case !r.player.IsActive() && !r.dealer.IsActive():
		r.resolve(compare(r.player.Value(), r.dealer.Value()))
	}
}

func compare(player, dealer int) Outcome {
	switch {
	case player > dealer:
		return PlayerWin
	case player < dealer:
		return DealerWin
	}
	return Push
}

func (r *Round) resolve(o Outcome) {
	r.phase = HandScoreScreen
	r.outcome = o
	r.dealer.Reveal()

	res := Result{
		RoundID:     r.id,
		Outcome:     o,
		PlayerValue: r.player.Value(),
		DealerValue: r.dealer.Value(),
	}
	r.logger.Debug("hand resolved",
		"round", res.RoundID,
		"outcome", res.Outcome,
		"player", res.PlayerValue,
		"dealer", res.DealerValue)
	if r.onResolve != nil {
		r.onResolve(res)
	}
}
