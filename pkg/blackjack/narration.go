package blackjack

import (
	"blackjack-server/pkg/deck"
	"fmt"
)

func openingNarration(player deck.Hand, playerScore int) string {
	return fmt.Sprintf("You have %s making a score of %d", player, playerScore)
}

func dealerShowingNarration(dealer deck.Hand) string {
	return fmt.Sprintf("The dealer has a %s showing", dealer.FirstCard())
}

func hitNarration(player deck.Hand, playerScore int, dealer deck.Hand) string {
	return fmt.Sprintf("You now have %s making a score of %d and the dealer has a %s showing", player, playerScore, dealer.FirstCard())
}

func outcomeLead(o Outcome) string {
	switch o {
	case OutcomePlayerBusted:
		return "You busted and the dealer did not, you lost with "
	case OutcomeBothBusted:
		return "You busted and so did the dealer, you lost with "
	case OutcomeDealerBusted:
		return "You did not bust and the dealer did, you win with "
	case OutcomePlayerHigher:
		return "You had a higher score than the dealer without busting, you win with "
	case OutcomePlayerLower:
		return "You had a lower score than the dealer without busting, you lost with "
	}

	return "You got the same score as the dealer, you tied with "
}

// Narration returns the end of hand text sent to the player
func (r *HandResult) Narration() string {
	return fmt.Sprintf("%s%d points \nwith these cards: %s \n and the dealer had %d points with these cards: %s ",
		outcomeLead(r.Outcome), r.PlayerScore, r.PlayerHand, r.DealerScore, r.DealerHand)
}
