// Package ledger holds the loan and balance arithmetic. Functions here are
// pure: they never touch storage and can be applied to any loan value.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"teenpatti_tracker/internal/models"
)

const (
	currencySymbol = "₹"
	noteDateLayout = "2006-01-02"
	paidInFull     = " (PAID in full)"
)

// ErrInvalidRepayment is returned for a repayment that is not a positive finite amount.
var ErrInvalidRepayment = errors.New("ledger: repayment amount must be a positive number")

// Repayment describes a repayment that has been applied to a loan.
type Repayment struct {
	LoanID    int64
	Amount    float64
	At        time.Time
	Completed bool
	Note      string
}

// Remaining returns amount - repaid floored at zero.
func Remaining(amount, repaid float64) float64 {
	rem := decimal.NewFromFloat(amount).Sub(decimal.NewFromFloat(repaid))
	if rem.IsNegative() {
		return 0
	}
	return rem.InexactFloat64()
}

// LoanRemaining is Remaining applied to a loan record.
func LoanRemaining(loan models.Loan) float64 {
	return Remaining(loan.Amount, loan.RepaidAmount)
}

// IsOutstanding reports whether a loan with the given status still counts as active.
func IsOutstanding(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.LoanPaid, models.LoanClosed:
		return false
	}
	return true
}

// ApplyRepayment adds amount to the loan's repaid total, marks it paid once the
// total reaches the original amount and appends a history line to its notes.
// A loan that is not yet covered keeps its current status.
func ApplyRepayment(loan *models.Loan, amount float64, at time.Time) (Repayment, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Repayment{}, ErrInvalidRepayment
	}

	repaid := decimal.NewFromFloat(loan.RepaidAmount).Add(decimal.NewFromFloat(amount))
	completed := repaid.GreaterThanOrEqual(decimal.NewFromFloat(loan.Amount))

	loan.RepaidAmount = repaid.InexactFloat64()
	if completed {
		loan.Status = models.LoanPaid
	}

	note := HistoryLine(amount, at, completed)
	loan.Notes = AppendNote(loan.Notes, note)
	loan.Remaining = LoanRemaining(*loan)

	return Repayment{LoanID: loan.ID, Amount: amount, At: at, Completed: completed, Note: note}, nil
}

// HistoryLine formats the notes entry recorded for a repayment.
func HistoryLine(amount float64, at time.Time, completed bool) string {
	line := fmt.Sprintf("Repayment %s%s on %s", currencySymbol, FormatAmount(amount), at.UTC().Format(noteDateLayout))
	if completed {
		line += paidInFull
	}
	return line
}

// AppendNote appends line to notes on its own line.
func AppendNote(notes, line string) string {
	return strings.TrimSpace(notes + "\n" + line)
}

// FormatAmount renders an amount without trailing zeros, e.g. 200 or 12.5.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}

// Summarize counts the outstanding loans and sums what remains on them.
func Summarize(loans []models.Loan) (active int, outstanding float64) {
	total := decimal.Zero
	for _, loan := range loans {
		if !IsOutstanding(loan.Status) {
			continue
		}
		active++
		total = total.Add(decimal.NewFromFloat(LoanRemaining(loan)))
	}
	return active, total.InexactFloat64()
}

// BalanceExtremes finds the players holding the highest and lowest balance.
// Ties go to whoever comes first. Both results are nil for an empty game.
func BalanceExtremes(players []models.GamePlayer) (highest, lowest *models.BalanceHolder) {
	for _, p := range players {
		if highest == nil || p.Balance > highest.Balance {
			highest = &models.BalanceHolder{PlayerID: p.ID, Name: p.Name, Balance: p.Balance}
		}
		if lowest == nil || p.Balance < lowest.Balance {
			lowest = &models.BalanceHolder{PlayerID: p.ID, Name: p.Name, Balance: p.Balance}
		}
	}
	return highest, lowest
}

// Stats builds the on-demand summary of a game from its participants and loans.
func Stats(game models.Game, loans []models.Loan) models.GameStats {
	stats := models.GameStats{GameID: game.ID, Players: len(game.Players)}
	stats.Highest, stats.Lowest = BalanceExtremes(game.Players)
	stats.ActiveLoans, stats.TotalOutstanding = Summarize(loans)
	return stats
}
