package game

// Value sums non-aces first, then adds each ace as 11 while that keeps the
// total at or under 21 and as 1 otherwise.
func Value(cards []Card) int {
	score := 0
	aces := 0

	for _, c := range cards {
		if c.Rank == Ace {
			aces++
			continue
		}
		score += c.Points()
	}

	for range aces {
		if score+Ace.Points() > 21 {
			score++
		} else {
			score += Ace.Points()
		}
	}

	return score
}

func IsBust(cards []Card) bool {
	return Value(cards) > 21
}
