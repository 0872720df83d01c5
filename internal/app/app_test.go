package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teenpatti_tracker/internal/models"
	"teenpatti_tracker/internal/pkg/auth"
	"teenpatti_tracker/internal/pkg/logger"
	"teenpatti_tracker/internal/pkg/metrics"
	"teenpatti_tracker/internal/storage"
	"teenpatti_tracker/internal/storage/memory"
	"teenpatti_tracker/internal/storage/mocks"
)

var fixedNow = time.Date(2024, 3, 8, 21, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newTestApp(t *testing.T) (*App, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	a := NewApp(memory.New(), logger.Nop(), m, nil)
	a.now = func() time.Time { return fixedNow }
	return a, m
}

// counterValue sums every series of a counter family.
func counterValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

// seedGame creates a game with two participants and returns their ids.
func seedGame(t *testing.T, a *App) (gameID, lenderID, borrowerID int64) {
	t.Helper()
	ctx := context.Background()

	game, err := a.CreateGame(ctx, models.CreateGameRequest{Name: "Friday", Date: "2024-03-08"})
	require.NoError(t, err)
	lender, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Asha")})
	require.NoError(t, err)
	borrower, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Ravi")})
	require.NoError(t, err)

	require.NoError(t, a.AddGamePlayer(ctx, game.ID, models.AddGamePlayerRequest{PlayerID: models.NumberOf(float64(lender.ID))}))
	require.NoError(t, a.AddGamePlayer(ctx, game.ID, models.AddGamePlayerRequest{PlayerID: models.NumberOf(float64(borrower.ID))}))
	return game.ID, lender.ID, borrower.ID
}

func createLoan(t *testing.T, a *App, gameID, lenderID, borrowerID int64, amount float64) *models.Loan {
	t.Helper()
	loan, err := a.CreateLoan(context.Background(), models.CreateLoanRequest{
		GameID:     models.NumberOf(float64(gameID)),
		LenderID:   models.NumberOf(float64(lenderID)),
		BorrowerID: models.NumberOf(float64(borrowerID)),
		Amount:     models.NumberOf(amount),
		Date:       "2024-03-08",
	})
	require.NoError(t, err)
	return loan
}

func TestCreatePlayer(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	player, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("  Asha  "), Image: strPtr("/uploads/a.png")})
	require.NoError(t, err)
	assert.Equal(t, "Asha", player.Name)
	require.NotNil(t, player.Image)
	assert.Equal(t, "/uploads/a.png", *player.Image)

	_, err = a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("ASHA")})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualError(t, err, "A player with that name already exists")

	_, err = a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("   ")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Name is required")

	_, err = a.CreatePlayer(ctx, models.PlayerRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePlayer(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	asha, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Asha"), Image: strPtr("/uploads/a.png")})
	require.NoError(t, err)
	_, err = a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Ravi")})
	require.NoError(t, err)

	renamed, err := a.UpdatePlayer(ctx, asha.ID, models.PlayerRequest{Name: strPtr("ASHA")})
	require.NoError(t, err)
	assert.Equal(t, "ASHA", renamed.Name)
	assert.NotNil(t, renamed.Image, "image is kept when not supplied")

	_, err = a.UpdatePlayer(ctx, asha.ID, models.PlayerRequest{Name: strPtr("ravi")})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = a.UpdatePlayer(ctx, asha.ID, models.PlayerRequest{Name: strPtr("")})
	assert.EqualError(t, err, "Name cannot be empty")

	cleared, err := a.UpdatePlayer(ctx, asha.ID, models.PlayerRequest{RemoveImage: true, Image: strPtr("/uploads/b.png")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Image)

	_, err = a.UpdatePlayer(ctx, 999, models.PlayerRequest{Name: strPtr("Nobody")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, a.DeletePlayer(ctx, 999), ErrNotFound)
}

func TestCreateGame(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	game, err := a.CreateGame(ctx, models.CreateGameRequest{Name: "Friday", Date: "2024-03-08", Notes: "at Ravi's"})
	require.NoError(t, err)
	assert.Equal(t, models.GameActive, game.Status)
	assert.Empty(t, game.Players)

	_, err = a.CreateGame(ctx, models.CreateGameRequest{Name: "Friday"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = a.CreateGame(ctx, models.CreateGameRequest{Name: "Friday", Date: "2024-03-08", Status: "paused"})
	assert.EqualError(t, err, "Status must be active or completed")
}

func TestUpdateGameIsPartial(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, _, _ := seedGame(t, a)

	game, err := a.UpdateGame(ctx, gameID, models.UpdateGameRequest{Status: strPtr(models.GameCompleted)})
	require.NoError(t, err)
	assert.Equal(t, "Friday", game.Name)
	assert.Equal(t, "2024-03-08", game.Date)
	assert.Equal(t, models.GameCompleted, game.Status)
	assert.Len(t, game.Players, 2)

	game, err = a.UpdateGame(ctx, gameID, models.UpdateGameRequest{Notes: strPtr("settled up")})
	require.NoError(t, err)
	assert.Equal(t, models.GameCompleted, game.Status)
	assert.Equal(t, "settled up", game.Notes)

	_, err = a.UpdateGame(ctx, gameID, models.UpdateGameRequest{Status: strPtr("paused")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = a.UpdateGame(ctx, 999, models.UpdateGameRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddGamePlayer(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, _ := seedGame(t, a)

	err := a.AddGamePlayer(ctx, gameID, models.AddGamePlayerRequest{PlayerID: models.NumberOf(float64(lenderID))})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualError(t, err, "Player already in game")

	game, err := a.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Len(t, game.Players, 2)

	err = a.AddGamePlayer(ctx, gameID, models.AddGamePlayerRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	err = a.AddGamePlayer(ctx, 999, models.AddGamePlayerRequest{PlayerID: models.NumberOf(float64(lenderID))})
	assert.ErrorIs(t, err, ErrNotFound)

	carol, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Carol")})
	require.NoError(t, err)
	err = a.AddGamePlayer(ctx, gameID, models.AddGamePlayerRequest{
		PlayerID:       models.NumberOf(float64(carol.ID)),
		Balance:        models.ParseNumber("abc"),
		InitialBalance: models.NumberOf(50),
	})
	assert.EqualError(t, err, "Balance must be a number")

	err = a.AddGamePlayer(ctx, gameID, models.AddGamePlayerRequest{
		PlayerID:       models.NumberOf(float64(carol.ID)),
		Balance:        models.NumberOf(50),
		InitialBalance: models.NumberOf(50),
	})
	require.NoError(t, err)

	players, err := a.db.ListGamePlayers(ctx, gameID)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, 50.0, players[2].Balance)
	assert.Equal(t, 50.0, players[2].InitialBalance)
}

func TestSetBalance(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, _ := seedGame(t, a)

	require.NoError(t, a.SetBalance(ctx, gameID, lenderID, models.BalanceRequest{Balance: models.NumberOf(-150)}))
	require.NoError(t, a.SetBalance(ctx, gameID, lenderID, models.BalanceRequest{Balance: models.NumberOf(75)}))

	game, err := a.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, game.Players[0].Balance, "balance is overwritten, not adjusted")

	outsider, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Outsider")})
	require.NoError(t, err)
	err = a.SetBalance(ctx, gameID, outsider.ID, models.BalanceRequest{Balance: models.NumberOf(10)})
	assert.ErrorIs(t, err, ErrNotFound)

	err = a.SetBalance(ctx, gameID, lenderID, models.BalanceRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateLoan(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)

	loan := createLoan(t, a, gameID, lenderID, borrowerID, 500)
	assert.Equal(t, 0.0, loan.RepaidAmount)
	assert.Equal(t, models.LoanActive, loan.Status)
	assert.Equal(t, models.PlayerRef{ID: lenderID, Name: "Asha"}, loan.Lender)
	assert.Equal(t, models.PlayerRef{ID: borrowerID, Name: "Ravi"}, loan.Borrower)
	assert.Equal(t, 500.0, loan.Remaining)
	assert.Equal(t, 1.0, counterValue(t, m, "tracker_loans_created_total"))

	undated, err := a.CreateLoan(ctx, models.CreateLoanRequest{
		GameID:     models.NumberOf(float64(gameID)),
		LenderID:   models.NumberOf(float64(lenderID)),
		BorrowerID: models.NumberOf(float64(borrowerID)),
		Amount:     models.ParseNumber("120.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-08", undated.Date)
	assert.Equal(t, 120.5, undated.Amount)
}

func TestCreateLoanValidation(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)

	refs := func(amount models.Number) models.CreateLoanRequest {
		return models.CreateLoanRequest{
			GameID:     models.NumberOf(float64(gameID)),
			LenderID:   models.NumberOf(float64(lenderID)),
			BorrowerID: models.NumberOf(float64(borrowerID)),
			Amount:     amount,
		}
	}

	testCases := []struct {
		name    string
		req     models.CreateLoanRequest
		kind    error
		message string
	}{
		{name: "missing game", req: models.CreateLoanRequest{LenderID: models.NumberOf(1), BorrowerID: models.NumberOf(2), Amount: models.NumberOf(10)}, kind: ErrValidation, message: "gameId, lenderId and borrowerId are required"},
		{name: "missing amount", req: refs(models.Number{}), kind: ErrValidation, message: "Amount is required and must be a number"},
		{name: "non-numeric amount", req: refs(models.ParseNumber("lots")), kind: ErrValidation, message: "Amount is required and must be a number"},
		{name: "zero amount", req: refs(models.NumberOf(0)), kind: ErrValidation, message: "Amount must be greater than zero"},
		{name: "negative amount", req: refs(models.NumberOf(-5)), kind: ErrValidation, message: "Amount must be greater than zero"},
		{name: "unknown game", req: models.CreateLoanRequest{GameID: models.NumberOf(999), LenderID: models.NumberOf(float64(lenderID)), BorrowerID: models.NumberOf(float64(borrowerID)), Amount: models.NumberOf(10)}, kind: ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.CreateLoan(ctx, tc.req)
			assert.ErrorIs(t, err, tc.kind)
			if tc.message != "" {
				assert.EqualError(t, err, tc.message)
			}
		})
	}

	loans, err := a.ListLoans(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, loans, "rejected loans are not stored")
}

func TestRecordRepayment(t *testing.T) {
	testCases := []struct {
		name          string
		amount        float64
		payments      []float64
		wantRepaid    float64
		wantStatus    string
		wantRemaining float64
		wantNotes     string
	}{
		{
			name:          "full repayment",
			amount:        500,
			payments:      []float64{500},
			wantRepaid:    500,
			wantStatus:    models.LoanPaid,
			wantRemaining: 0,
			wantNotes:     "Repayment ₹500 on 2024-03-08 (PAID in full)",
		},
		{
			name:          "partial repayment",
			amount:        500,
			payments:      []float64{200},
			wantRepaid:    200,
			wantStatus:    models.LoanActive,
			wantRemaining: 300,
			wantNotes:     "Repayment ₹200 on 2024-03-08",
		},
		{
			name:          "partials that add up",
			amount:        500,
			payments:      []float64{200, 300},
			wantRepaid:    500,
			wantStatus:    models.LoanPaid,
			wantRemaining: 0,
			wantNotes:     "Repayment ₹200 on 2024-03-08\nRepayment ₹300 on 2024-03-08 (PAID in full)",
		},
		{
			name:          "overpayment",
			amount:        100,
			payments:      []float64{150},
			wantRepaid:    150,
			wantStatus:    models.LoanPaid,
			wantRemaining: 0,
			wantNotes:     "Repayment ₹150 on 2024-03-08 (PAID in full)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			gameID, lenderID, borrowerID := seedGame(t, a)
			loan := createLoan(t, a, gameID, lenderID, borrowerID, tc.amount)

			var err error
			for _, p := range tc.payments {
				loan, err = a.RecordRepayment(context.Background(), loan.ID, models.RepaymentRequest{Amount: models.NumberOf(p)})
				require.NoError(t, err)
			}

			assert.Equal(t, tc.wantRepaid, loan.RepaidAmount)
			assert.Equal(t, tc.wantStatus, loan.Status)
			assert.Equal(t, tc.wantRemaining, loan.Remaining)
			assert.Equal(t, tc.wantNotes, loan.Notes)
		})
	}
}

func TestRecordRepaymentLeavesBalancesAlone(t *testing.T) {
	a, m := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)
	require.NoError(t, a.SetBalance(ctx, gameID, borrowerID, models.BalanceRequest{Balance: models.NumberOf(-500)}))
	loan := createLoan(t, a, gameID, lenderID, borrowerID, 500)

	_, err := a.RecordRepayment(ctx, loan.ID, models.RepaymentRequest{Amount: models.NumberOf(500)})
	require.NoError(t, err)

	game, err := a.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, -500.0, game.Players[1].Balance)
	assert.Equal(t, 1.0, counterValue(t, m, "tracker_repayments_total"))
}

func TestRecordRepaymentRejects(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)
	loan := createLoan(t, a, gameID, lenderID, borrowerID, 500)

	for _, amount := range []models.Number{{}, models.NumberOf(0), models.NumberOf(-10), models.ParseNumber("ten")} {
		_, err := a.RecordRepayment(ctx, loan.ID, models.RepaymentRequest{Amount: amount})
		assert.ErrorIs(t, err, ErrValidation)
	}

	_, err := a.RecordRepayment(ctx, 999, models.RepaymentRequest{Amount: models.NumberOf(10)})
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := a.GetLoan(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.RepaidAmount)
	assert.Empty(t, stored.Notes)
}

func TestUpdateLoan(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)
	loan := createLoan(t, a, gameID, lenderID, borrowerID, 500)

	updated, err := a.UpdateLoan(ctx, loan.ID, models.UpdateLoanRequest{Amount: models.NumberOf(800)})
	require.NoError(t, err)
	assert.Equal(t, 800.0, updated.Amount)
	assert.Equal(t, models.LoanActive, updated.Status)
	assert.Equal(t, 800.0, updated.Remaining)

	updated, err = a.UpdateLoan(ctx, loan.ID, models.UpdateLoanRequest{RepaidAmount: models.NumberOf(900), Notes: strPtr("cash")})
	require.NoError(t, err)
	assert.Equal(t, 900.0, updated.RepaidAmount, "repaid amount is not clamped on direct edits")
	assert.Equal(t, models.LoanActive, updated.Status, "status is not derived on direct edits")
	assert.Equal(t, 0.0, updated.Remaining)
	assert.Equal(t, "cash", updated.Notes)

	updated, err = a.UpdateLoan(ctx, loan.ID, models.UpdateLoanRequest{Status: strPtr(models.LoanClosed)})
	require.NoError(t, err)
	assert.Equal(t, models.LoanClosed, updated.Status)
	assert.Equal(t, 800.0, updated.Amount)

	_, err = a.UpdateLoan(ctx, loan.ID, models.UpdateLoanRequest{Amount: models.ParseNumber("abc")})
	assert.EqualError(t, err, "Amount is required and must be a number")

	_, err = a.UpdateLoan(ctx, 999, models.UpdateLoanRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLoan(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)
	loan := createLoan(t, a, gameID, lenderID, borrowerID, 500)

	require.NoError(t, a.DeleteLoan(ctx, loan.ID))
	assert.ErrorIs(t, a.DeleteLoan(ctx, loan.ID), ErrNotFound)
	_, err := a.GetLoan(ctx, loan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameStats(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)
	require.NoError(t, a.SetBalance(ctx, gameID, lenderID, models.BalanceRequest{Balance: models.NumberOf(300)}))
	require.NoError(t, a.SetBalance(ctx, gameID, borrowerID, models.BalanceRequest{Balance: models.NumberOf(-300)}))

	first := createLoan(t, a, gameID, lenderID, borrowerID, 500)
	createLoan(t, a, gameID, borrowerID, lenderID, 100)
	paid := createLoan(t, a, gameID, lenderID, borrowerID, 50)

	_, err := a.RecordRepayment(ctx, first.ID, models.RepaymentRequest{Amount: models.NumberOf(200)})
	require.NoError(t, err)
	_, err = a.RecordRepayment(ctx, paid.ID, models.RepaymentRequest{Amount: models.NumberOf(50)})
	require.NoError(t, err)

	stats, err := a.GameStats(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Players)
	require.NotNil(t, stats.Highest)
	assert.Equal(t, "Asha", stats.Highest.Name)
	assert.Equal(t, 300.0, stats.Highest.Balance)
	require.NotNil(t, stats.Lowest)
	assert.Equal(t, "Ravi", stats.Lowest.Name)
	assert.Equal(t, 2, stats.ActiveLoans)
	assert.Equal(t, 400.0, stats.TotalOutstanding)

	loans, err := a.GameLoans(ctx, gameID)
	require.NoError(t, err)
	assert.Len(t, loans, 3)

	_, err = a.GameStats(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteGameCascades(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()
	gameID, lenderID, borrowerID := seedGame(t, a)
	createLoan(t, a, gameID, lenderID, borrowerID, 500)

	require.NoError(t, a.DeleteGame(ctx, gameID))

	loans, err := a.ListLoans(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, loans)
	_, err = a.GetGame(ctx, gameID)
	assert.ErrorIs(t, err, ErrNotFound)

	players, err := a.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 2, "players outlive their games")
}

func TestLogin(t *testing.T) {
	issuer, err := auth.NewIssuer("hunter2", "secret")
	require.NoError(t, err)
	a := NewApp(memory.New(), logger.Nop(), nil, issuer)
	assert.True(t, a.AuthEnabled())

	token, err := a.Login("hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = a.Login("wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Login("")
	assert.ErrorIs(t, err, ErrValidation)

	disabled := NewApp(memory.New(), logger.Nop(), nil, nil)
	assert.False(t, disabled.AuthEnabled())
	_, err = disabled.Login("hunter2")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStorageFailuresPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockStorage(ctrl)
	a := NewApp(mockDB, logger.Nop(), nil, nil)
	ctx := context.Background()
	dbDown := errors.New("connection refused")

	mockDB.EXPECT().FindPlayerByName(gomock.Any(), "Asha").Return(nil, dbDown)
	_, err := a.CreatePlayer(ctx, models.PlayerRequest{Name: strPtr("Asha")})
	assert.ErrorIs(t, err, dbDown)

	mockDB.EXPECT().ListLoans(gomock.Any(), int64(0)).Return(nil, dbDown)
	_, err = a.ListLoans(ctx, 0)
	assert.ErrorIs(t, err, dbDown)

	mockDB.EXPECT().UpdateLoan(gomock.Any(), int64(3), gomock.Any()).Return(nil, dbDown)
	_, err = a.RecordRepayment(ctx, 3, models.RepaymentRequest{Amount: models.NumberOf(10)})
	assert.ErrorIs(t, err, dbDown)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestCreatePlayerRaceMapsToDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockStorage(ctrl)
	a := NewApp(mockDB, logger.Nop(), nil, nil)

	gomock.InOrder(
		mockDB.EXPECT().FindPlayerByName(gomock.Any(), "Asha").Return(nil, storage.ErrNotFound),
		mockDB.EXPECT().CreatePlayer(gomock.Any(), gomock.AssignableToTypeOf(&models.Player{})).
			Return(nil, storage.ErrConflict),
	)

	_, err := a.CreatePlayer(context.Background(), models.PlayerRequest{Name: strPtr("Asha")})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRecordRepaymentRunsInsideUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mocks.NewMockStorage(ctrl)
	a := NewApp(mockDB, logger.Nop(), nil, nil)
	a.now = func() time.Time { return fixedNow }

	mockDB.EXPECT().UpdateLoan(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, mutate storage.LoanMutation) (*models.Loan, error) {
			loan := &models.Loan{ID: 7, Amount: 500, RepaidAmount: 300, Status: models.LoanActive}
			if err := mutate(loan); err != nil {
				return nil, err
			}
			return loan, nil
		})

	loan, err := a.RecordRepayment(context.Background(), 7, models.RepaymentRequest{Amount: models.NumberOf(200)})
	require.NoError(t, err)
	assert.Equal(t, models.LoanPaid, loan.Status)
	assert.Equal(t, "Repayment ₹200 on 2024-03-08 (PAID in full)", loan.Notes)
}
