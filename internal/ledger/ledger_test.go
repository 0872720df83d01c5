package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teenpatti_tracker/internal/models"
)

var repaidOn = time.Date(2024, 3, 9, 21, 30, 0, 0, time.UTC)

func TestRemaining(t *testing.T) {
	testCases := []struct {
		amount, repaid, want float64
	}{
		{500, 0, 500},
		{500, 200, 300},
		{500, 500, 0},
		{500, 800, 0},
		{0.3, 0.1, 0.2},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Remaining(tc.amount, tc.repaid), "amount=%v repaid=%v", tc.amount, tc.repaid)
	}
}

func TestApplyRepaymentPaysInFull(t *testing.T) {
	loan := models.Loan{ID: 4, Amount: 500, Status: models.LoanActive}

	rep, err := ApplyRepayment(&loan, 500, repaidOn)
	require.NoError(t, err)

	assert.Equal(t, 500.0, loan.RepaidAmount)
	assert.Equal(t, models.LoanPaid, loan.Status)
	assert.Equal(t, 0.0, loan.Remaining)
	assert.True(t, rep.Completed)
	assert.Equal(t, int64(4), rep.LoanID)
	assert.Equal(t, "Repayment ₹500 on 2024-03-09 (PAID in full)", loan.Notes)
}

func TestApplyRepaymentPartial(t *testing.T) {
	loan := models.Loan{Amount: 500, Status: models.LoanActive, Notes: "borrowed for round 3"}

	rep, err := ApplyRepayment(&loan, 200, repaidOn)
	require.NoError(t, err)

	assert.Equal(t, 200.0, loan.RepaidAmount)
	assert.Equal(t, models.LoanActive, loan.Status)
	assert.Equal(t, 300.0, loan.Remaining)
	assert.False(t, rep.Completed)
	assert.Equal(t, "borrowed for round 3\nRepayment ₹200 on 2024-03-09", loan.Notes)
}

func TestApplyRepaymentAccumulates(t *testing.T) {
	loan := models.Loan{Amount: 500, Status: models.LoanActive}

	_, err := ApplyRepayment(&loan, 200, repaidOn)
	require.NoError(t, err)
	_, err = ApplyRepayment(&loan, 350.5, repaidOn.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, 550.5, loan.RepaidAmount)
	assert.Equal(t, models.LoanPaid, loan.Status)
	assert.Equal(t, 0.0, loan.Remaining)
	assert.Equal(t, "Repayment ₹200 on 2024-03-09\nRepayment ₹350.5 on 2024-03-10 (PAID in full)", loan.Notes)
}

func TestApplyRepaymentKeepsCustomStatus(t *testing.T) {
	loan := models.Loan{Amount: 100, Status: "disputed"}

	_, err := ApplyRepayment(&loan, 10, repaidOn)
	require.NoError(t, err)
	assert.Equal(t, "disputed", loan.Status)
}

func TestApplyRepaymentRejectsInvalidAmounts(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		loan := models.Loan{Amount: 500, Status: models.LoanActive, Notes: "n"}
		_, err := ApplyRepayment(&loan, amount, repaidOn)
		assert.ErrorIs(t, err, ErrInvalidRepayment)
		assert.Equal(t, 0.0, loan.RepaidAmount)
		assert.Equal(t, "n", loan.Notes)
	}
}

func TestIsOutstanding(t *testing.T) {
	assert.True(t, IsOutstanding(models.LoanActive))
	assert.True(t, IsOutstanding(""))
	assert.False(t, IsOutstanding(models.LoanPaid))
	assert.False(t, IsOutstanding("Closed"))
}

func TestSummarize(t *testing.T) {
	loans := []models.Loan{
		{Amount: 500, RepaidAmount: 200, Status: models.LoanActive},
		{Amount: 300, Status: models.LoanActive},
		{Amount: 100, RepaidAmount: 150, Status: models.LoanActive},
		{Amount: 1000, RepaidAmount: 1000, Status: models.LoanPaid},
		{Amount: 50, Status: models.LoanClosed},
	}

	active, outstanding := Summarize(loans)
	assert.Equal(t, 3, active)
	assert.Equal(t, 600.0, outstanding)
}

func TestBalanceExtremes(t *testing.T) {
	highest, lowest := BalanceExtremes(nil)
	assert.Nil(t, highest)
	assert.Nil(t, lowest)

	players := []models.GamePlayer{
		{ID: 1, Name: "Asha", Balance: 200},
		{ID: 2, Name: "Ravi", Balance: -150},
		{ID: 3, Name: "Meera", Balance: 200},
		{ID: 4, Name: "Dev", Balance: -150},
	}
	highest, lowest = BalanceExtremes(players)
	require.NotNil(t, highest)
	require.NotNil(t, lowest)
	assert.Equal(t, models.BalanceHolder{PlayerID: 1, Name: "Asha", Balance: 200}, *highest)
	assert.Equal(t, models.BalanceHolder{PlayerID: 2, Name: "Ravi", Balance: -150}, *lowest)
}

func TestStats(t *testing.T) {
	game := models.Game{ID: 9, Players: []models.GamePlayer{{ID: 1, Name: "Asha", Balance: 75}}}
	loans := []models.Loan{{Amount: 500, RepaidAmount: 200, Status: models.LoanActive}}

	stats := Stats(game, loans)
	assert.Equal(t, int64(9), stats.GameID)
	assert.Equal(t, 1, stats.Players)
	assert.Equal(t, 1, stats.ActiveLoans)
	assert.Equal(t, 300.0, stats.TotalOutstanding)
	assert.Equal(t, stats.Highest, stats.Lowest)
}
