package service

import (
	"context"
	"net/http"
	"strconv"

	"teenpatti_tracker/internal/models"
)

// listLoansHandler lists every loan, or the loans of one game when gameId is given.
func (handlers *handlers) listLoansHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var gameID int64
	if raw := req.URL.Query().Get("gameId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			writeErrorResponse(res, "invalid gameId", http.StatusBadRequest)
			return
		}
		gameID = id
	}

	loans, err := handlers.app.ListLoans(ctx, gameID)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, loans)
}

func (handlers *handlers) getLoanHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid loan id", http.StatusBadRequest)
		return
	}

	loan, err := handlers.app.GetLoan(ctx, id)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, loan)
}

func (handlers *handlers) createLoanHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var loanRequest models.CreateLoanRequest
	if err := decodeJSON(req, &loanRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	loan, err := handlers.app.CreateLoan(ctx, loanRequest)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusCreated, loan)
}

// updateLoanHandler applies a direct edit. Repayments go through repaymentHandler.
func (handlers *handlers) updateLoanHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid loan id", http.StatusBadRequest)
		return
	}

	var loanRequest models.UpdateLoanRequest
	if err := decodeJSON(req, &loanRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	loan, err := handlers.app.UpdateLoan(ctx, id, loanRequest)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, loan)
}

func (handlers *handlers) repaymentHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid loan id", http.StatusBadRequest)
		return
	}

	var repaymentRequest models.RepaymentRequest
	if err := decodeJSON(req, &repaymentRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	loan, err := handlers.app.RecordRepayment(ctx, id, repaymentRequest)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, loan)
}

func (handlers *handlers) deleteLoanHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid loan id", http.StatusBadRequest)
		return
	}

	if err := handlers.app.DeleteLoan(ctx, id); err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeMessage(res, "Loan deleted successfully")
}
