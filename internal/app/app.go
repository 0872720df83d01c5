// Package app provides the core business logic of the session tracker.
// It validates requests, applies the ledger rules to loans and balances,
// and classifies failures as validation, not-found or duplicate errors.
// The package works against the storage.Storage interface, so any store
// (PostgreSQL or in-memory) can back it.
package app

import (
	"errors"
	"strings"
	"time"

	"teenpatti_tracker/internal/pkg/auth"
	"teenpatti_tracker/internal/pkg/logger"
	"teenpatti_tracker/internal/pkg/metrics"
	"teenpatti_tracker/internal/storage"
)

const dateLayout = "2006-01-02"

// App encapsulates the application logic and dependencies required to process requests.
type App struct {
	db      storage.Storage  // Storage layer for persistent data operations.
	log     *logger.Logger   // Logger for application events and errors.
	metrics *metrics.Metrics // Ledger counters; may be nil.
	issuer  *auth.Issuer     // Admin token issuer; may be nil when auth is disabled.
	now     func() time.Time
}

// NewApp creates and returns a new instance of App with the provided dependencies.
// m and issuer are optional.
func NewApp(db storage.Storage, l *logger.Logger, m *metrics.Metrics, issuer *auth.Issuer) *App {
	return &App{db: db, log: l, metrics: m, issuer: issuer, now: time.Now}
}

// Login exchanges the admin password for a token.
func (app *App) Login(password string) (string, error) {
	if password == "" {
		return "", validationError("missing password")
	}
	token, err := app.issuer.Login(password)
	switch {
	case errors.Is(err, auth.ErrAuthDisabled):
		return "", validationError("authentication is disabled")
	case errors.Is(err, auth.ErrInvalidPassword):
		return "", &Error{kind: ErrUnauthorized, Message: "incorrect password"}
	case err != nil:
		return "", err
	}
	return token, nil
}

// AuthEnabled reports whether mutating routes are protected.
func (app *App) AuthEnabled() bool {
	return app.issuer.Enabled()
}

func (app *App) today() string {
	return app.now().Format(dateLayout)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
