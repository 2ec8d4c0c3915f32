package game

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
)

// roundFrom deals the player the first two cards, the dealer the next two,
// and leaves the rest on top of the deck in order.
func roundFrom(draws ...Card) *Round {
	return NewRound(WithDeck(stackedDeck(draws...)))
}

func assertOutcome(t *testing.T, r *Round, want Outcome) {
	t.Helper()
	got, ok := r.Outcome()
	if !ok {
		t.Fatalf("expected outcome %s, round still in %s", want, r.Phase())
	}
	if got != want {
		t.Errorf("expected outcome %s, got %s", want, got)
	}
	if r.Phase() != HandScoreScreen {
		t.Errorf("expected HandScoreScreen, got %s", r.Phase())
	}
	if r.Dealer().Status() != Revealed {
		t.Errorf("expected dealer hand revealed, got %s", r.Dealer().Status())
	}
}

func TestNewRoundDealsTwoHands(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Six, Diamond))
	if r.Phase() != PlayingHand {
		t.Fatalf("expected PlayingHand, got %s", r.Phase())
	}
	if _, ok := r.Outcome(); ok {
		t.Error("expected no outcome while playing")
	}
	if r.Player().Role() != PlayerRole || r.Dealer().Role() != DealerRole {
		t.Error("hands dealt to the wrong roles")
	}
	if r.Player().Value() != 20 || r.Dealer().Value() != 16 {
		t.Errorf("expected 20 vs 16, got %d vs %d", r.Player().Value(), r.Dealer().Value())
	}
	if r.ID() == uuid.Nil {
		t.Error("expected round to have an id")
	}
}

func TestHoldAgainstDealerOnSixteen(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Six, Diamond))
	r.Hold()

	assertOutcome(t, r, PlayerWin)
	if r.Dealer().Len() != 2 {
		t.Errorf("dealer on 16 must hold without drawing, has %d cards", r.Dealer().Len())
	}
	if r.Player().Status() != Held {
		t.Errorf("expected player Held, got %s", r.Player().Status())
	}
}

func TestHitIntoBust(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Seven, Diamond),
		card(Five, Spade))
	r.Hit()

	assertOutcome(t, r, Bust)
	if r.Player().Value() != 25 {
		t.Errorf("expected player value 25, got %d", r.Player().Value())
	}
}

func TestPlayerBustBeatsDealerBust(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Two, Diamond),
		card(Five, Spade), card(King, Club))
	r.Hit()

	if !r.Dealer().IsBust() {
		t.Fatalf("expected dealer to bust on its step, value %d", r.Dealer().Value())
	}
	assertOutcome(t, r, Bust)
}

func TestDealerStepsOnEveryHit(t *testing.T) {
	r := roundFrom(card(Two, Spade), card(Three, Heart), card(Ten, Club), card(Four, Diamond),
		card(Four, Spade), card(Two, Club), card(Five, Heart))

	r.Hit()
	if r.Phase() != PlayingHand {
		t.Fatalf("expected PlayingHand, got %s", r.Phase())
	}
	if r.Dealer().Len() != 3 || !r.Dealer().IsActive() {
		t.Fatalf("expected dealer to hit to 16 and stay active, has %d cards, %s",
			r.Dealer().Len(), r.Dealer().Status())
	}

	r.Hit()
	if r.Phase() != PlayingHand {
		t.Fatalf("expected PlayingHand while player is active, got %s", r.Phase())
	}
	if r.Dealer().Status() != Held || r.Dealer().Len() != 3 {
		t.Fatalf("expected dealer to hold on 16, has %d cards, %s", r.Dealer().Len(), r.Dealer().Status())
	}

	r.Hold()
	assertOutcome(t, r, DealerWin)
	if r.Player().Value() != 14 {
		t.Errorf("expected player value 14, got %d", r.Player().Value())
	}
}

func TestHoldDealerBusts(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(Eight, Heart), card(Ten, Club), card(Five, Diamond),
		card(King, Spade))
	r.Hold()

	assertOutcome(t, r, PlayerWin)
	if r.Dealer().Len() != 3 || !r.Dealer().IsBust() {
		t.Errorf("expected dealer bust with 3 cards, has %d worth %d", r.Dealer().Len(), r.Dealer().Value())
	}
}

func TestHoldPush(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(Seven, Heart), card(Nine, Club), card(Eight, Diamond))
	r.Hold()
	assertOutcome(t, r, Push)
}

func TestHoldDealerDrawsUntilSixteen(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(Nine, Heart), card(Two, Club), card(Three, Diamond),
		card(Four, Spade), card(Two, Heart), card(Five, Club))
	r.Hold()

	assertOutcome(t, r, PlayerWin)
	if r.Dealer().Len() != 5 || r.Dealer().Value() != 16 {
		t.Errorf("expected dealer on 16 with 5 cards, has %d worth %d", r.Dealer().Len(), r.Dealer().Value())
	}
}

func TestApplyQuit(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Six, Diamond))
	id := r.ID()

	if !r.Apply(ActionQuit) {
		t.Fatal("expected quit while playing")
	}
	if r.Phase() != PlayingHand || r.ID() != id || r.Player().Len() != 2 {
		t.Error("quit must not change the round")
	}

	r.Apply(ActionHold)
	if !r.Apply(ActionQuit) {
		t.Fatal("expected quit on the score screen")
	}
	if r.Phase() != HandScoreScreen {
		t.Error("quit must not leave the score screen")
	}
}

func TestNewRoundIgnoredWhilePlaying(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Six, Diamond))
	id := r.ID()

	if r.Apply(ActionNewRound) {
		t.Fatal("new round must not quit")
	}
	if r.ID() != id || r.Phase() != PlayingHand || r.Player().Value() != 20 {
		t.Error("new round while playing must be ignored")
	}
}

func TestAnyActionOnScoreScreenDealsNewHand(t *testing.T) {
	for _, a := range []Action{ActionHit, ActionHold, ActionNewRound} {
		t.Run(a.String(), func(t *testing.T) {
			r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Six, Diamond))
			r.Apply(ActionHold)
			id := r.ID()

			if r.Apply(a) {
				t.Fatal("expected session to continue")
			}
			if r.Phase() != PlayingHand {
				t.Fatalf("expected PlayingHand, got %s", r.Phase())
			}
			if r.Player().Len() != 2 || r.Dealer().Len() != 2 {
				t.Errorf("expected two 2-card hands, got %d and %d", r.Player().Len(), r.Dealer().Len())
			}
			if !r.Player().IsActive() || !r.Dealer().IsActive() {
				t.Error("expected fresh hands to be active")
			}
			if r.ID() == id {
				t.Error("expected a new round id")
			}
		})
	}
}

func TestPlayActionsIgnoredOnScoreScreen(t *testing.T) {
	r := roundFrom(card(Ten, Spade), card(King, Heart), card(Ten, Club), card(Six, Diamond))
	r.Hold()

	r.Hit()
	r.Hold()
	if r.Player().Len() != 2 || r.Dealer().Len() != 2 {
		t.Error("hit or hold on the score screen changed the hands")
	}
	assertOutcome(t, r, PlayerWin)
}

func TestOnResolveFiresOncePerRound(t *testing.T) {
	var results []Result
	r := NewRound(
		WithDeck(NewSeededDeck(9)),
		OnResolve(func(res Result) { results = append(results, res) }),
	)

	ids := make(map[uuid.UUID]bool)
	for i := range 50 {
		r.Apply(ActionHold)
		if len(results) != i+1 {
			t.Fatalf("round %d: expected %d results, got %d", i, i+1, len(results))
		}
		res := results[i]
		o, _ := r.Outcome()
		if res.RoundID != r.ID() || res.Outcome != o {
			t.Fatalf("round %d: result %+v does not match round", i, res)
		}
		if res.PlayerValue != r.Player().Value() || res.DealerValue != r.Dealer().Value() {
			t.Fatalf("round %d: result values %d/%d, hands %d/%d", i,
				res.PlayerValue, res.DealerValue, r.Player().Value(), r.Dealer().Value())
		}
		ids[res.RoundID] = true
		r.Apply(ActionNewRound)
	}
	if len(ids) != 50 {
		t.Errorf("expected 50 distinct round ids, got %d", len(ids))
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	r := NewRound(WithDeck(NewSeededDeck(5)))
	actions := []Action{ActionHit, ActionHold, ActionNewRound}

	for step := range 5000 {
		r.Apply(actions[rng.IntN(len(actions))])

		if r.Player().Len() < 2 || r.Dealer().Len() < 2 {
			t.Fatalf("step %d: hand lost cards", step)
		}
		if n := r.deck.Remaining(); n < 0 || n > 52 {
			t.Fatalf("step %d: deck holds %d cards", step, n)
		}

		switch r.Phase() {
		case HandScoreScreen:
			if r.Dealer().Status() != Revealed {
				t.Fatalf("step %d: score screen with dealer %s", step, r.Dealer().Status())
			}
			if _, ok := r.Outcome(); !ok {
				t.Fatalf("step %d: score screen without outcome", step)
			}
		case PlayingHand:
			if r.Dealer().Status() == Revealed {
				t.Fatalf("step %d: dealer revealed mid-hand", step)
			}
			if !r.Player().IsActive() || r.Player().IsBust() {
				t.Fatalf("step %d: playing with player %s worth %d", step,
					r.Player().Status(), r.Player().Value())
			}
			if r.Dealer().IsBust() {
				t.Fatalf("step %d: playing with a bust dealer", step)
			}
		}
	}
}
