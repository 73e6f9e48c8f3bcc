package blackjack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineOutcome(t *testing.T) {
	a := assert.New(t)

	a.Equal(OutcomePlayerBusted, DetermineOutcome(22, 18))
	a.Equal(OutcomeBothBusted, DetermineOutcome(24, 23))
	a.Equal(OutcomeDealerBusted, DetermineOutcome(19, 22))
	a.Equal(OutcomePlayerHigher, DetermineOutcome(20, 18))
	a.Equal(OutcomePlayerLower, DetermineOutcome(17, 19))
	a.Equal(OutcomeTie, DetermineOutcome(20, 20))
	a.Equal(OutcomeTie, DetermineOutcome(21, 21))
	a.Equal(OutcomeDealerBusted, DetermineOutcome(21, 26))
}

func TestOutcome_Result(t *testing.T) {
	a := assert.New(t)

	a.Equal(ResultLoss, OutcomePlayerBusted.Result())
	a.Equal(ResultLoss, OutcomeBothBusted.Result())
	a.Equal(ResultWin, OutcomeDealerBusted.Result())
	a.Equal(ResultWin, OutcomePlayerHigher.Result())
	a.Equal(ResultLoss, OutcomePlayerLower.Result())
	a.Equal(ResultTie, OutcomeTie.Result())
}

func TestOutcome_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("both busted", OutcomeBothBusted.String())
	a.Equal("tie", OutcomeTie.String())
	a.Panics(func() {
		_ = Outcome(42).String()
	})
}

func TestOutcome_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(OutcomeDealerBusted)
	a.NoError(err)
	a.JSONEq(`{"id":2,"name":"dealer busted","result":"win"}`, string(b))

	var o Outcome
	a.NoError(json.Unmarshal(b, &o))
	a.Equal(OutcomeDealerBusted, o)

	a.EqualError(json.Unmarshal([]byte(`{"id":9}`), &o), "invalid outcome: 9")
}
