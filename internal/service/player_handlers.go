package service

import (
	"context"
	"net/http"
	"strings"

	"teenpatti_tracker/internal/models"
)

func (handlers *handlers) listPlayersHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	players, err := handlers.app.ListPlayers(ctx)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, players)
}

func (handlers *handlers) getPlayerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid player id", http.StatusBadRequest)
		return
	}

	player, err := handlers.app.GetPlayer(ctx, id)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, player)
}

// createPlayerHandler accepts either a JSON body or a multipart form with an optional image file.
func (handlers *handlers) createPlayerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	playerRequest, uploaded, err := handlers.readPlayerRequest(res, req)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	player, err := handlers.app.CreatePlayer(ctx, playerRequest)
	if err != nil {
		handlers.discardUpload(uploaded)
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusCreated, player)
}

// updatePlayerHandler renames a player or changes its image. Like creation it
// accepts JSON or multipart; removeImage clears the image.
func (handlers *handlers) updatePlayerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid player id", http.StatusBadRequest)
		return
	}

	playerRequest, uploaded, err := handlers.readPlayerRequest(res, req)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	player, err := handlers.app.UpdatePlayer(ctx, id, playerRequest)
	if err != nil {
		handlers.discardUpload(uploaded)
		handlers.writeAppError(res, err)
		return
	}
	writeJSON(res, http.StatusOK, player)
}

func (handlers *handlers) deletePlayerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	id, ok := pathID(req, "id")
	if !ok {
		writeErrorResponse(res, "invalid player id", http.StatusBadRequest)
		return
	}

	if err := handlers.app.DeletePlayer(ctx, id); err != nil {
		handlers.writeAppError(res, err)
		return
	}
	writeMessage(res, "Player deleted successfully")
}

// readPlayerRequest decodes a player payload. Multipart requests may carry the
// image as a file part, which is stored before the request reaches the app;
// its public path is returned so a rejected write can discard it.
func (handlers *handlers) readPlayerRequest(res http.ResponseWriter, req *http.Request) (models.PlayerRequest, string, error) {
	var playerRequest models.PlayerRequest
	if !isMultipart(req) {
		if err := decodeJSON(req, &playerRequest); err != nil {
			return playerRequest, "", badRequest(err)
		}
		return playerRequest, "", nil
	}

	if handlers.uploads != nil {
		req.Body = http.MaxBytesReader(res, req.Body, handlers.uploads.MaxBytes()+multipartOverhead)
	}
	if err := req.ParseMultipartForm(multipartMemory); err != nil {
		return playerRequest, "", badRequest(err)
	}

	if values, ok := req.MultipartForm.Value["name"]; ok && len(values) > 0 {
		name := values[0]
		playerRequest.Name = &name
	}
	if image := req.FormValue("image"); image != "" {
		playerRequest.Image = &image
	}
	playerRequest.RemoveImage = isTrue(req.FormValue("removeImage"))

	var uploaded string
	if handlers.uploads != nil {
		path, ok, err := handlers.uploads.FromRequest(req, "image")
		if err != nil {
			return playerRequest, "", err
		}
		if ok {
			playerRequest.Image = &path
			uploaded = path
		}
	}
	return playerRequest, uploaded, nil
}

func (handlers *handlers) discardUpload(publicPath string) {
	if publicPath == "" || handlers.uploads == nil {
		return
	}
	if err := handlers.uploads.Remove(publicPath); err != nil {
		handlers.log.Sugar().Errorf("Failed to remove rejected upload %s: %s", publicPath, err)
	}
}

func isTrue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}
