// Package service contains the HTTP handlers of the tracker API.
// It parses requests, calls the business logic in the app package, maps its
// error kinds to status codes and writes JSON responses.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"teenpatti_tracker/internal/app"
	"teenpatti_tracker/internal/models"
	"teenpatti_tracker/internal/pkg/logger"
	"teenpatti_tracker/internal/pkg/upload"
)

const (
	requestTimeout = 10 * time.Second

	// multipartOverhead is the allowance for form fields and part headers on top of the file limit.
	multipartOverhead = 1 << 20
	multipartMemory   = 8 << 20
)

// requestError marks a request whose body could not be decoded.
type requestError struct {
	err error
}

func (e requestError) Error() string { return e.err.Error() }

func (e requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return requestError{err: err}
}

// handlers aggregates dependencies needed by HTTP handlers,
// including the application business logic, upload storage and logger.
type handlers struct {
	app     *app.App
	uploads *upload.Store
	log     *logger.Logger
}

// newHandlers initializes a new handlers instance with the provided dependencies.
func newHandlers(app *app.App, uploads *upload.Store, l *logger.Logger) *handlers {
	return &handlers{app: app, uploads: uploads, log: l}
}

// healthHandler reports that the API is up.
func (handlers *handlers) healthHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
		Message:   "Teen Patti Tracker API is running",
	})
}

// authHandler exchanges the admin password for a token.
func (handlers *handlers) authHandler(res http.ResponseWriter, req *http.Request) {
	var authRequest models.AuthRequest
	if err := decodeJSON(req, &authRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := handlers.app.Login(authRequest.Password)
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}

	writeJSON(res, http.StatusOK, models.AuthResponse{Token: token})
}

// uploadHandler stores an image sent in the "file" field and returns its public path.
func (handlers *handlers) uploadHandler(res http.ResponseWriter, req *http.Request) {
	if handlers.uploads == nil {
		writeErrorResponse(res, "uploads are disabled", http.StatusNotFound)
		return
	}

	req.Body = http.MaxBytesReader(res, req.Body, handlers.uploads.MaxBytes()+multipartOverhead)
	path, ok, err := handlers.uploads.FromRequest(req, "file")
	if err != nil {
		handlers.writeAppError(res, err)
		return
	}
	if !ok {
		writeErrorResponse(res, "No file uploaded", http.StatusBadRequest)
		return
	}

	writeJSON(res, http.StatusOK, models.UploadResponse{Path: path})
}

// notFoundHandler answers unknown API routes with a JSON error.
func (handlers *handlers) notFoundHandler(res http.ResponseWriter, req *http.Request) {
	writeErrorResponse(res, "route not found", http.StatusNotFound)
}

// writeAppError maps an error returned by the app package to a status code.
func (handlers *handlers) writeAppError(res http.ResponseWriter, err error) {
	var appError *app.Error
	var maxBytesError *http.MaxBytesError
	var decodeError requestError
	switch {
	case errors.As(err, &appError) && errors.Is(err, app.ErrValidation):
		writeErrorResponse(res, appError.Message, http.StatusBadRequest)
	case errors.As(err, &appError) && errors.Is(err, app.ErrNotFound):
		writeErrorResponse(res, appError.Message, http.StatusNotFound)
	case errors.As(err, &appError) && errors.Is(err, app.ErrDuplicate):
		writeErrorResponse(res, appError.Message, http.StatusConflict)
	case errors.As(err, &appError) && errors.Is(err, app.ErrUnauthorized):
		writeErrorResponse(res, appError.Message, http.StatusUnauthorized)
	case errors.Is(err, upload.ErrNotImage):
		writeErrorResponse(res, "Only image files are allowed", http.StatusBadRequest)
	case errors.Is(err, upload.ErrTooLarge), errors.As(err, &maxBytesError):
		writeErrorResponse(res, "File is too large", http.StatusBadRequest)
	case errors.As(err, &decodeError):
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.DeadlineExceeded):
		handlers.log.Warn("request timed out", zap.Error(err))
		writeErrorResponse(res, err.Error(), http.StatusServiceUnavailable)
	default:
		handlers.log.Error("request failed", zap.Error(err))
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
	}
}

// pathID reads a positive integer URL parameter.
func pathID(req *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(req, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isMultipart(req *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// decodeJSON reads the whole body into v.
func decodeJSON(req *http.Request, v any) error {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(requestBody, v)
}

func writeJSON(res http.ResponseWriter, statusCode int, v any) {
	result, err := json.Marshal(v)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeMessage(res http.ResponseWriter, message string) {
	writeJSON(res, http.StatusOK, models.MessageResponse{Message: message})
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
