package app

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"teenpatti_tracker/internal/models"
	"teenpatti_tracker/internal/storage"
)

const (
	msgPlayerNotFound  = "Player not found"
	msgPlayerNameTaken = "A player with that name already exists"
)

// ListPlayers returns every player, newest first.
func (app *App) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return app.db.ListPlayers(ctx)
}

// GetPlayer returns a single player.
func (app *App) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	player, err := app.db.GetPlayer(ctx, id)
	if err != nil {
		return nil, translate(err, msgPlayerNotFound, "")
	}
	return player, nil
}

// CreatePlayer registers a player. Names are trimmed and must be unique regardless of case.
func (app *App) CreatePlayer(ctx context.Context, req models.PlayerRequest) (*models.Player, error) {
	name := trimmed(req.Name)
	if name == "" {
		return nil, validationError("Name is required")
	}

	if err := app.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	player := &models.Player{Name: name}
	if !req.RemoveImage && trimmed(req.Image) != "" {
		image := trimmed(req.Image)
		player.Image = &image
	}

	player, err := app.db.CreatePlayer(ctx, player)
	if err != nil {
		return nil, translate(err, "", msgPlayerNameTaken)
	}
	app.log.Debug("player created", zap.Int64("player_id", player.ID), zap.String("name", player.Name))
	return player, nil
}

// UpdatePlayer renames a player and replaces or removes its image.
// Fields that are not supplied keep their value.
func (app *App) UpdatePlayer(ctx context.Context, id int64, req models.PlayerRequest) (*models.Player, error) {
	player, err := app.db.GetPlayer(ctx, id)
	if err != nil {
		return nil, translate(err, msgPlayerNotFound, "")
	}

	if req.Name != nil {
		name := trimmed(req.Name)
		if name == "" {
			return nil, validationError("Name cannot be empty")
		}
		if !strings.EqualFold(name, player.Name) {
			if err := app.checkNameFree(ctx, name, id); err != nil {
				return nil, err
			}
		}
		player.Name = name
	}

	switch {
	case req.RemoveImage:
		player.Image = nil
	case trimmed(req.Image) != "":
		image := trimmed(req.Image)
		player.Image = &image
	}

	player, err = app.db.UpdatePlayer(ctx, player)
	if err != nil {
		return nil, translate(err, msgPlayerNotFound, msgPlayerNameTaken)
	}
	return player, nil
}

// DeletePlayer removes a player together with its participations and loans.
func (app *App) DeletePlayer(ctx context.Context, id int64) error {
	if err := app.db.DeletePlayer(ctx, id); err != nil {
		return translate(err, msgPlayerNotFound, "")
	}
	app.log.Info("player deleted", zap.Int64("player_id", id))
	return nil
}

// checkNameFree fails with a duplicate error when another player already uses name.
func (app *App) checkNameFree(ctx context.Context, name string, exceptID int64) error {
	existing, err := app.db.FindPlayerByName(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != exceptID {
		return duplicateError(msgPlayerNameTaken)
	}
	return nil
}
