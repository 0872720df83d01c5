package app

import (
	"context"

	"go.uber.org/zap"

	"teenpatti_tracker/internal/ledger"
	"teenpatti_tracker/internal/models"
)

const (
	msgGameNotFound          = "Game not found"
	msgParticipationNotFound = "Player is not part of this game"
)

func validGameStatus(status string) bool {
	return status == models.GameActive || status == models.GameCompleted
}

// ListGames returns every game with its participants, newest first.
func (app *App) ListGames(ctx context.Context) ([]models.Game, error) {
	return app.db.ListGames(ctx)
}

// GetGame returns a game with its participants.
func (app *App) GetGame(ctx context.Context, id int64) (*models.Game, error) {
	game, err := app.db.GetGame(ctx, id)
	if err != nil {
		return nil, translate(err, msgGameNotFound, "")
	}
	return game, nil
}

// CreateGame starts a new game. The status defaults to active.
func (app *App) CreateGame(ctx context.Context, req models.CreateGameRequest) (*models.Game, error) {
	name := trimmed(&req.Name)
	date := trimmed(&req.Date)
	if name == "" || date == "" {
		return nil, validationError("Name and date are required")
	}

	status := trimmed(&req.Status)
	if status == "" {
		status = models.GameActive
	}
	if !validGameStatus(status) {
		return nil, validationError("Status must be active or completed")
	}

	game := &models.Game{Name: name, Date: date, Status: status, Notes: req.Notes}
	if image := trimmed(req.Image); image != "" {
		game.Image = &image
	}

	game, err := app.db.CreateGame(ctx, game)
	if err != nil {
		return nil, err
	}
	app.log.Info("game created", zap.Int64("game_id", game.ID), zap.String("name", game.Name))
	return game, nil
}

// UpdateGame edits any subset of a game's fields.
func (app *App) UpdateGame(ctx context.Context, id int64, req models.UpdateGameRequest) (*models.Game, error) {
	game, err := app.db.GetGame(ctx, id)
	if err != nil {
		return nil, translate(err, msgGameNotFound, "")
	}

	if req.Name != nil {
		if trimmed(req.Name) == "" {
			return nil, validationError("Name cannot be empty")
		}
		game.Name = trimmed(req.Name)
	}
	if req.Date != nil {
		if trimmed(req.Date) == "" {
			return nil, validationError("Date cannot be empty")
		}
		game.Date = trimmed(req.Date)
	}
	if req.Status != nil {
		if !validGameStatus(trimmed(req.Status)) {
			return nil, validationError("Status must be active or completed")
		}
		game.Status = trimmed(req.Status)
	}
	if req.Image != nil {
		if image := trimmed(req.Image); image != "" {
			game.Image = &image
		} else {
			game.Image = nil
		}
	}
	if req.Notes != nil {
		game.Notes = *req.Notes
	}

	game, err = app.db.UpdateGame(ctx, game)
	if err != nil {
		return nil, translate(err, msgGameNotFound, "")
	}
	return game, nil
}

// DeleteGame removes a game together with its participations and loans.
func (app *App) DeleteGame(ctx context.Context, id int64) error {
	if err := app.db.DeleteGame(ctx, id); err != nil {
		return translate(err, msgGameNotFound, "")
	}
	app.log.Info("game deleted", zap.Int64("game_id", id))
	return nil
}

// AddGamePlayer joins a player to a game. A player can join a given game once.
// Balances that are not supplied start at zero.
func (app *App) AddGamePlayer(ctx context.Context, gameID int64, req models.AddGamePlayerRequest) error {
	playerID, ok := req.PlayerID.ID()
	if !ok {
		return validationError("playerId is required")
	}
	if req.Balance.Set && !req.Balance.Valid {
		return validationError("Balance must be a number")
	}
	if req.InitialBalance.Set && !req.InitialBalance.Valid {
		return validationError("Initial balance must be a number")
	}

	participation := models.Participation{
		GameID:         gameID,
		PlayerID:       playerID,
		Balance:        req.Balance.Value,
		InitialBalance: req.InitialBalance.Value,
	}
	if err := app.db.AddGamePlayer(ctx, participation); err != nil {
		return translate(err, "Game or player not found", "Player already in game")
	}
	app.log.Info("player joined game", zap.Int64("game_id", gameID), zap.Int64("player_id", playerID))
	return nil
}

// SetBalance overwrites a participant's running balance. It is not a delta.
func (app *App) SetBalance(ctx context.Context, gameID, playerID int64, req models.BalanceRequest) error {
	if !req.Balance.Valid {
		return validationError("Balance is required and must be a number")
	}
	if err := app.db.SetGamePlayerBalance(ctx, gameID, playerID, req.Balance.Value); err != nil {
		return translate(err, msgParticipationNotFound, "")
	}
	app.log.Info("balance set",
		zap.Int64("game_id", gameID),
		zap.Int64("player_id", playerID),
		zap.Float64("balance", req.Balance.Value))
	return nil
}

// GameLoans lists the loans recorded in a game.
func (app *App) GameLoans(ctx context.Context, gameID int64) ([]models.Loan, error) {
	if _, err := app.GetGame(ctx, gameID); err != nil {
		return nil, err
	}
	return app.db.ListLoans(ctx, gameID)
}

// GameStats summarizes a game: who holds the highest and lowest balance,
// how many loans are outstanding and how much remains on them.
func (app *App) GameStats(ctx context.Context, gameID int64) (models.GameStats, error) {
	game, err := app.GetGame(ctx, gameID)
	if err != nil {
		return models.GameStats{}, err
	}
	loans, err := app.db.ListLoans(ctx, gameID)
	if err != nil {
		return models.GameStats{}, err
	}
	return ledger.Stats(*game, loans), nil
}
