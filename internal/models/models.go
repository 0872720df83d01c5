// Package models defines the data structures used throughout the application.
// It includes the persisted entities (players, games, participations and loans)
// and the request and response payloads exchanged over the HTTP API.
package models

import "time"

// Game statuses.
const (
	GameActive    = "active"
	GameCompleted = "completed"
)

// Loan statuses. LoanClosed is a legacy value still found in older records;
// it is treated like LoanPaid when counting outstanding loans.
const (
	LoanActive = "active"
	LoanPaid   = "paid"
	LoanClosed = "closed"
)

// Player is a person taking part in one or more games.
// Names are unique regardless of letter case.
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// Game is a single card-game session.
type Game struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Date      string       `json:"date"`
	Status    string       `json:"status"`
	Image     *string      `json:"image"`
	Notes     string       `json:"notes"`
	CreatedAt time.Time    `json:"createdAt"`
	Players   []GamePlayer `json:"players"`
}

// GamePlayer is a player as seen from inside a game: identity plus the
// balances carried by the participation record.
type GamePlayer struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Image          *string `json:"image"`
	Balance        float64 `json:"balance"`
	InitialBalance float64 `json:"initialBalance"`
}

// Participation links one player to one game. The (GameID, PlayerID) pair is unique.
type Participation struct {
	GameID         int64
	PlayerID       int64
	Balance        float64
	InitialBalance float64
}

// PlayerRef is the display form of a player referenced by a loan.
type PlayerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Loan is money lent from one player to another during a game.
// Notes doubles as an append-only repayment history.
type Loan struct {
	ID           int64     `json:"id"`
	GameID       int64     `json:"game"`
	Lender       PlayerRef `json:"lender"`
	Borrower     PlayerRef `json:"borrower"`
	Amount       float64   `json:"amount"`
	RepaidAmount float64   `json:"repaidAmount"`
	Remaining    float64   `json:"remaining"`
	Status       string    `json:"status"`
	Date         string    `json:"date"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BalanceHolder identifies the player holding an extreme balance in a game.
type BalanceHolder struct {
	PlayerID int64   `json:"playerId"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
}

// GameStats is the read-only summary of a game computed on demand.
type GameStats struct {
	GameID           int64          `json:"gameId"`
	Players          int            `json:"players"`
	Highest          *BalanceHolder `json:"highest"`
	Lowest           *BalanceHolder `json:"lowest"`
	ActiveLoans      int            `json:"activeLoans"`
	TotalOutstanding float64        `json:"totalOutstanding"`
}

// PlayerRequest carries player creation and update fields, decoded from
// either a JSON body or a multipart form.
type PlayerRequest struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	RemoveImage bool    `json:"removeImage"`
}

// CreateGameRequest is the payload for POST /api/games.
type CreateGameRequest struct {
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Image  *string `json:"image"`
	Notes  string  `json:"notes"`
}

// UpdateGameRequest is the payload for PUT /api/games/{id}. Absent fields keep their value.
type UpdateGameRequest struct {
	Name   *string `json:"name"`
	Date   *string `json:"date"`
	Status *string `json:"status"`
	Image  *string `json:"image"`
	Notes  *string `json:"notes"`
}

// AddGamePlayerRequest is the payload for POST /api/games/{id}/players.
type AddGamePlayerRequest struct {
	PlayerID       Number `json:"playerId"`
	Balance        Number `json:"balance"`
	InitialBalance Number `json:"initialBalance"`
}

// BalanceRequest is the payload for PUT /api/games/{id}/players/{playerId}/balance.
type BalanceRequest struct {
	Balance Number `json:"balance"`
}

// CreateLoanRequest is the payload for POST /api/loans.
type CreateLoanRequest struct {
	GameID     Number `json:"gameId"`
	LenderID   Number `json:"lenderId"`
	BorrowerID Number `json:"borrowerId"`
	Amount     Number `json:"amount"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
}

// UpdateLoanRequest is the payload for PUT /api/loans/{id}. Absent fields keep their value.
type UpdateLoanRequest struct {
	Amount       Number  `json:"amount"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	RepaidAmount Number  `json:"repaidAmount"`
}

// RepaymentRequest is the payload for POST /api/loans/{id}/repayments.
type RepaymentRequest struct {
	Amount Number `json:"amount"`
}

// AuthRequest represents the authentication request payload.
type AuthRequest struct {
	Password string `json:"password"`
}

// AuthResponse represents the authentication response payload.
// It contains the generated token upon successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// MessageResponse acknowledges an operation that has no entity to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse holds the public path of a stored upload.
type UploadResponse struct {
	Path string `json:"path"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
