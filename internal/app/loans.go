package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"teenpatti_tracker/internal/ledger"
	"teenpatti_tracker/internal/models"
)

const (
	msgLoanNotFound  = "Loan not found"
	msgAmountInvalid = "Amount is required and must be a number"
)

// ListLoans returns loans newest first. A gameID of 0 lists every game.
func (app *App) ListLoans(ctx context.Context, gameID int64) ([]models.Loan, error) {
	return app.db.ListLoans(ctx, gameID)
}

// GetLoan returns a single loan with its remaining amount.
func (app *App) GetLoan(ctx context.Context, id int64) (*models.Loan, error) {
	loan, err := app.db.GetLoan(ctx, id)
	if err != nil {
		return nil, translate(err, msgLoanNotFound, "")
	}
	return loan, nil
}

// CreateLoan records money lent from one player to another. The loan starts
// active with nothing repaid. A missing date means today.
func (app *App) CreateLoan(ctx context.Context, req models.CreateLoanRequest) (*models.Loan, error) {
	gameID, okGame := req.GameID.ID()
	lenderID, okLender := req.LenderID.ID()
	borrowerID, okBorrower := req.BorrowerID.ID()
	if !okGame || !okLender || !okBorrower {
		return nil, validationError("gameId, lenderId and borrowerId are required")
	}
	if !req.Amount.Valid {
		return nil, validationError(msgAmountInvalid)
	}
	if req.Amount.Value <= 0 {
		return nil, validationError("Amount must be greater than zero")
	}

	date := trimmed(&req.Date)
	if date == "" {
		date = app.today()
	}

	loan, err := app.db.CreateLoan(ctx, &models.Loan{
		GameID:   gameID,
		Lender:   models.PlayerRef{ID: lenderID},
		Borrower: models.PlayerRef{ID: borrowerID},
		Amount:   req.Amount.Value,
		Status:   models.LoanActive,
		Date:     date,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, translate(err, "Game, lender or borrower not found", "")
	}

	app.metrics.LoanCreated(loan.Amount)
	app.log.Info("loan created",
		zap.Int64("loan_id", loan.ID),
		zap.Int64("game_id", loan.GameID),
		zap.Int64("lender_id", loan.Lender.ID),
		zap.Int64("borrower_id", loan.Borrower.ID),
		zap.Float64("amount", loan.Amount))
	return loan, nil
}

// UpdateLoan edits any subset of amount, status, notes and repaid amount.
// The values are written as given: status is not derived from the amounts
// and the repaid amount may exceed the loan amount.
func (app *App) UpdateLoan(ctx context.Context, id int64, req models.UpdateLoanRequest) (*models.Loan, error) {
	if req.Amount.Set && !req.Amount.Valid {
		return nil, validationError(msgAmountInvalid)
	}
	if req.RepaidAmount.Set && !req.RepaidAmount.Valid {
		return nil, validationError("Repaid amount must be a number")
	}

	loan, err := app.db.UpdateLoan(ctx, id, func(loan *models.Loan) error {
		if req.Amount.Set {
			loan.Amount = req.Amount.Value
		}
		if req.Status != nil {
			loan.Status = *req.Status
		}
		if req.Notes != nil {
			loan.Notes = *req.Notes
		}
		if req.RepaidAmount.Set {
			loan.RepaidAmount = req.RepaidAmount.Value
		}
		return nil
	})
	if err != nil {
		return nil, translate(err, msgLoanNotFound, "")
	}
	app.log.Debug("loan updated", zap.Int64("loan_id", id))
	return loan, nil
}

// RecordRepayment adds a repayment to a loan, marks it paid once fully covered
// and appends the repayment to the loan's notes. Participant balances are not touched.
func (app *App) RecordRepayment(ctx context.Context, id int64, req models.RepaymentRequest) (*models.Loan, error) {
	if !req.Amount.Valid || req.Amount.Value <= 0 {
		return nil, validationError("Repayment amount must be a positive number")
	}

	var repayment ledger.Repayment
	loan, err := app.db.UpdateLoan(ctx, id, func(loan *models.Loan) error {
		var err error
		repayment, err = ledger.ApplyRepayment(loan, req.Amount.Value, app.now())
		return err
	})
	if errors.Is(err, ledger.ErrInvalidRepayment) {
		return nil, validationError("Repayment amount must be a positive number")
	}
	if err != nil {
		return nil, translate(err, msgLoanNotFound, "")
	}

	app.metrics.RepaymentRecorded(repayment.Amount, repayment.Completed)
	app.log.Info("repayment recorded",
		zap.Int64("loan_id", loan.ID),
		zap.Float64("amount", repayment.Amount),
		zap.Float64("remaining", loan.Remaining),
		zap.Bool("completed", repayment.Completed))
	return loan, nil
}

// DeleteLoan removes a loan. Balances are left as they are.
func (app *App) DeleteLoan(ctx context.Context, id int64) error {
	if err := app.db.DeleteLoan(ctx, id); err != nil {
		return translate(err, msgLoanNotFound, "")
	}
	app.log.Info("loan deleted", zap.Int64("loan_id", id))
	return nil
}
