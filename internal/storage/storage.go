// Package storage provides primitives for connecting to and interacting with data storage systems.
// It defines the Storage interface along with a PostgreSQL implementation that persists players,
// games, game participations and loans, with cascading deletes from games and players.
package storage

import (
	"context"
	"errors"

	"teenpatti_tracker/internal/models"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("storage: record not found")
	// ErrConflict is returned when a write would break a uniqueness constraint.
	ErrConflict = errors.New("storage: record already exists")
)

// LoanMutation edits a loan in place while the store holds it exclusively.
// Returning an error aborts the update.
type LoanMutation func(loan *models.Loan) error

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the underlying connection.
	Close()

	// Player methods. FindPlayerByName matches names case-insensitively.
	ListPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	FindPlayerByName(ctx context.Context, name string) (*models.Player, error)
	CreatePlayer(ctx context.Context, player *models.Player) (*models.Player, error)
	UpdatePlayer(ctx context.Context, player *models.Player) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int64) error

	// Game methods. Returned games carry their participants.
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id int64) (*models.Game, error)
	CreateGame(ctx context.Context, game *models.Game) (*models.Game, error)
	UpdateGame(ctx context.Context, game *models.Game) (*models.Game, error)
	DeleteGame(ctx context.Context, id int64) error

	// Participation methods.
	AddGamePlayer(ctx context.Context, participation models.Participation) error
	SetGamePlayerBalance(ctx context.Context, gameID, playerID int64, balance float64) error
	ListGamePlayers(ctx context.Context, gameID int64) ([]models.GamePlayer, error)

	// Loan methods. ListLoans returns every loan when gameID is 0.
	ListLoans(ctx context.Context, gameID int64) ([]models.Loan, error)
	GetLoan(ctx context.Context, id int64) (*models.Loan, error)
	CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)
	UpdateLoan(ctx context.Context, id int64, mutate LoanMutation) (*models.Loan, error)
	DeleteLoan(ctx context.Context, id int64) error
}
