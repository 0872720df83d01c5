package service

import (
	"context"
	"net/http"

	"teenpatti_tracker/internal/models"
)

func (handlers *handlers) listGamesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	games, err := handlers.app.ListGames(ctx)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, games)
}

func (handlers *handlers) getGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid game id", http.StatusBadRequest)
		return
	}

	game, err := handlers.app.GetGame(ctx, id)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, game)
}

func (handlers *handlers) createGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var gameRequest models.CreateGameRequest
	if err := decodeJSON(req, &gameRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	game, err := handlers.app.CreateGame(ctx, gameRequest)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusCreated, game)
}

func (handlers *handlers) updateGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid game id", http.StatusBadRequest)
		return
	}

	var gameRequest models.UpdateGameRequest
	if err := decodeJSON(req, &gameRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	game, err := handlers.app.UpdateGame(ctx, id, gameRequest)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, game)
}

func (handlers *handlers) deleteGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid game id", http.StatusBadRequest)
		return
	}

	if err := handlers.app.DeleteGame(ctx, id); err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeMessage(res, "Game deleted successfully")
}

func (handlers *handlers) addGamePlayerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid game id", http.StatusBadRequest)
		return
	}

	var addRequest models.AddGamePlayerRequest
	if err := decodeJSON(req, &addRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.AddGamePlayer(ctx, gameID, addRequest); err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeMessage(res, "Player added to game successfully")
}

// setBalanceHandler overwrites a participant's balance with the given value.
func (handlers *handlers) setBalanceHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, okGame := pathID(req, "id")
	playerID, okPlayer := pathID(req, "playerId")
	if !okGame || !okPlayer {
		writeErrorResponse(res, "invalid game or player id", http.StatusBadRequest)
		return
	}

	var balanceRequest models.BalanceRequest
	if err := decodeJSON(req, &balanceRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handlers.app.SetBalance(ctx, gameID, playerID, balanceRequest); err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeMessage(res, "Player balance updated successfully")
}

func (handlers *handlers) gameStatsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid game id", http.StatusBadRequest)
		return
	}

	stats, err := handlers.app.GameStats(ctx, id)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, stats)
}

func (handlers *handlers) gameLoansHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid game id", http.StatusBadRequest)
		return
	}

	loans, err := handlers.app.GameLoans(ctx, id)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, loans)
}
