package blackjack

import (
	"encoding/json"
	"fmt"
)

// Outcome is how a hand ended for the player
type Outcome int

// Outcome constants, in the order they are evaluated
const (
	OutcomePlayerBusted Outcome = iota
	OutcomeBothBusted
	OutcomeDealerBusted
	OutcomePlayerHigher
	OutcomePlayerLower
	OutcomeTie
)

// Result is the win/loss/tie view of an outcome
type Result string

// Result constants
const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultTie  Result = "tie"
)

// DetermineOutcome compares the final scores
func DetermineOutcome(playerScore, dealerScore int) Outcome {
	switch {
	case IsBusted(playerScore) && !IsBusted(dealerScore):
		return OutcomePlayerBusted
	case IsBusted(playerScore) && IsBusted(dealerScore):
		return OutcomeBothBusted
	case IsBusted(dealerScore):
		return OutcomeDealerBusted
	case playerScore > dealerScore:
		return OutcomePlayerHigher
	case playerScore < dealerScore:
		return OutcomePlayerLower
	}

	return OutcomeTie
}

// Result returns whether the player won, lost or tied
func (o Outcome) Result() Result {
	switch o {
	case OutcomeDealerBusted, OutcomePlayerHigher:
		return ResultWin
	case OutcomeTie:
		return ResultTie
	}

	return ResultLoss
}

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerBusted:
		return "player busted"
	case OutcomeBothBusted:
		return "both busted"
	case OutcomeDealerBusted:
		return "dealer busted"
	case OutcomePlayerHigher:
		return "player higher"
	case OutcomePlayerLower:
		return "player lower"
	case OutcomeTie:
		return "tie"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// MarshalJSON encodes the JSON
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Result Result `json:"result"`
	}{
		ID:     int(o),
		Name:   o.String(),
		Result: o.Result(),
	})
}

// UnmarshalJSON decodes the id written by MarshalJSON
func (o *Outcome) UnmarshalJSON(b []byte) error {
	var v struct {
		ID int `json:"id"`
	}

	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	if v.ID < int(OutcomePlayerBusted) || v.ID > int(OutcomeTie) {
		return fmt.Errorf("invalid outcome: %d", v.ID)
	}

	*o = Outcome(v.ID)
	return nil
}
