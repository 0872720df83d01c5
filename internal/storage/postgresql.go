package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"teenpatti_tracker/internal/ledger"
	"teenpatti_tracker/internal/models"
	"teenpatti_tracker/internal/pkg/logger"
)

const (
	listPlayersQuery      = `SELECT id, name, image, created_at FROM players ORDER BY created_at DESC, id DESC;`
	getPlayerQuery        = `SELECT id, name, image, created_at FROM players WHERE id = $1;`
	findPlayerByNameQuery = `SELECT id, name, image, created_at FROM players WHERE LOWER(name) = LOWER($1);`
	createPlayerQuery     = `INSERT INTO players (name, image) VALUES ($1, $2) RETURNING id, created_at;`
	updatePlayerQuery     = `UPDATE players SET name = $1, image = $2 WHERE id = $3 RETURNING created_at;`
	deletePlayerQuery     = `DELETE FROM players WHERE id = $1;`

	listGamesQuery  = `SELECT id, name, date, status, image, notes, created_at FROM games ORDER BY created_at DESC, id DESC;`
	getGameQuery    = `SELECT id, name, date, status, image, notes, created_at FROM games WHERE id = $1;`
	createGameQuery = `INSERT INTO games (name, date, status, image, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`
	updateGameQuery = `UPDATE games SET name = $1, date = $2, status = $3, image = $4, notes = $5 WHERE id = $6 RETURNING created_at;`
	deleteGameQuery = `DELETE FROM games WHERE id = $1;`

	listAllGamePlayersQuery = `SELECT gp.game_id, p.id, p.name, p.image, gp.balance, gp.initial_balance FROM game_players gp JOIN players p ON gp.player_id = p.id ORDER BY gp.id;`
	listGamePlayersQuery    = `SELECT gp.game_id, p.id, p.name, p.image, gp.balance, gp.initial_balance FROM game_players gp JOIN players p ON gp.player_id = p.id WHERE gp.game_id = $1 ORDER BY gp.id;`
	addGamePlayerQuery      = `INSERT INTO game_players (game_id, player_id, balance, initial_balance) VALUES ($1, $2, $3, $4);`
	setBalanceQuery         = `UPDATE game_players SET balance = $1 WHERE game_id = $2 AND player_id = $3;`

	selectLoanColumns     = `SELECT l.id, l.game_id, l.lender_id, lender.name, l.borrower_id, borrower.name, l.amount, l.repaid_amount, l.status, l.date, l.notes, l.created_at FROM loans l JOIN players lender ON l.lender_id = lender.id JOIN players borrower ON l.borrower_id = borrower.id`
	listLoansQuery        = selectLoanColumns + ` ORDER BY l.created_at DESC, l.id DESC;`
	listGameLoansQuery    = selectLoanColumns + ` WHERE l.game_id = $1 ORDER BY l.created_at DESC, l.id DESC;`
	getLoanQuery          = selectLoanColumns + ` WHERE l.id = $1;`
	getLoanForUpdateQuery = selectLoanColumns + ` WHERE l.id = $1 FOR UPDATE OF l;`
	createLoanQuery       = `INSERT INTO loans (game_id, lender_id, borrower_id, amount, repaid_amount, status, date, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`
	updateLoanQuery       = `UPDATE loans SET amount = $1, repaid_amount = $2, status = $3, notes = $4 WHERE id = $5;`
	deleteLoanQuery       = `DELETE FROM loans WHERE id = $1;`
	invalidLoansQuery     = `SELECT id, game_id, lender_id, borrower_id, amount FROM loans WHERE amount IS NULL OR amount <= 0 ORDER BY id;`
	duplicateNamesQuery   = `SELECT LOWER(name) AS lname, STRING_AGG(id::TEXT, ',' ORDER BY id) AS ids, COUNT(*) AS cnt FROM players GROUP BY LOWER(name) HAVING COUNT(*) > 1 ORDER BY lname;`
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

var _ Storage = (*PostgreSQL)(nil)

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string and logger.
// It opens the connection and pings the database to ensure connectivity.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// NewPostgreSQLWithDB wraps an already opened database handle.
func NewPostgreSQLWithDB(db *sql.DB, l *logger.Logger) *PostgreSQL {
	return &PostgreSQL{db: db, log: l}
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// classify translates constraint violations into the package's sentinel errors.
func classify(err error) error {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) {
		return err
	}
	switch pgError.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	player := &models.Player{}
	var image sql.NullString
	if err := row.Scan(&player.ID, &player.Name, &image, &player.CreatedAt); err != nil {
		return nil, err
	}
	player.Image = stringPtr(image)
	return player, nil
}

func scanGame(row rowScanner) (*models.Game, error) {
	game := &models.Game{Players: []models.GamePlayer{}}
	var image sql.NullString
	if err := row.Scan(&game.ID, &game.Name, &game.Date, &game.Status, &image, &game.Notes, &game.CreatedAt); err != nil {
		return nil, err
	}
	game.Image = stringPtr(image)
	return game, nil
}

func scanGamePlayer(row rowScanner) (int64, models.GamePlayer, error) {
	var gameID int64
	var player models.GamePlayer
	var image sql.NullString
	if err := row.Scan(&gameID, &player.ID, &player.Name, &image, &player.Balance, &player.InitialBalance); err != nil {
		return 0, player, err
	}
	player.Image = stringPtr(image)
	return gameID, player, nil
}

func scanLoan(row rowScanner) (*models.Loan, error) {
	loan := &models.Loan{}
	err := row.Scan(&loan.ID, &loan.GameID, &loan.Lender.ID, &loan.Lender.Name, &loan.Borrower.ID, &loan.Borrower.Name,
		&loan.Amount, &loan.RepaidAmount, &loan.Status, &loan.Date, &loan.Notes, &loan.CreatedAt)
	if err != nil {
		return nil, err
	}
	loan.Remaining = ledger.LoanRemaining(*loan)
	return loan, nil
}

// execAffecting runs a statement that must touch at least one row.
func (postgresql *PostgreSQL) execAffecting(ctx context.Context, query, name string, args ...any) error {
	result, err := postgresql.db.ExecContext(ctx, query, args...)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", name, err)
		return classify(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute RowsAffected in %s: %s", name, err)
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPlayers returns every player, newest first.
func (postgresql *PostgreSQL) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := postgresql.db.QueryContext(ctx, listPlayersQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listPlayersQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan player in ListPlayers method: %s", err)
			return nil, err
		}
		players = append(players, *player)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListPlayers method: %s", err)
		return nil, err
	}

	return players, nil
}

// GetPlayer retrieves a player by ID.
func (postgresql *PostgreSQL) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	player, err := scanPlayer(postgresql.db.QueryRowContext(ctx, getPlayerQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getPlayerQuery: %s", err)
		return nil, err
	}
	return player, nil
}

// FindPlayerByName retrieves a player whose name matches regardless of case.
func (postgresql *PostgreSQL) FindPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	player, err := scanPlayer(postgresql.db.QueryRowContext(ctx, findPlayerByNameQuery, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query findPlayerByNameQuery: %s", err)
		return nil, err
	}
	return player, nil
}

// CreatePlayer inserts a player and fills in its ID and creation time.
func (postgresql *PostgreSQL) CreatePlayer(ctx context.Context, player *models.Player) (*models.Player, error) {
	err := postgresql.db.QueryRowContext(ctx, createPlayerQuery, player.Name, nullableString(player.Image)).
		Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createPlayerQuery: %s", err)
		return nil, classify(err)
	}
	return player, nil
}

// UpdatePlayer overwrites a player's name and image.
func (postgresql *PostgreSQL) UpdatePlayer(ctx context.Context, player *models.Player) (*models.Player, error) {
	err := postgresql.db.QueryRowContext(ctx, updatePlayerQuery, player.Name, nullableString(player.Image), player.ID).
		Scan(&player.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updatePlayerQuery: %s", err)
		return nil, classify(err)
	}
	return player, nil
}

// DeletePlayer removes a player; participations and loans referencing it cascade.
func (postgresql *PostgreSQL) DeletePlayer(ctx context.Context, id int64) error {
	return postgresql.execAffecting(ctx, deletePlayerQuery, "deletePlayerQuery", id)
}

// ListGames returns every game with its participants, newest first.
func (postgresql *PostgreSQL) ListGames(ctx context.Context) ([]models.Game, error) {
	rows, err := postgresql.db.QueryContext(ctx, listGamesQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listGamesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	index := make(map[int64]int)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan game in ListGames method: %s", err)
			return nil, err
		}
		index[game.ID] = len(games)
		games = append(games, *game)
	}
	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListGames method: %s", err)
		return nil, err
	}

	playerRows, err := postgresql.db.QueryContext(ctx, listAllGamePlayersQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listAllGamePlayersQuery: %s", err)
		return nil, err
	}
	defer playerRows.Close()

	for playerRows.Next() {
		gameID, player, err := scanGamePlayer(playerRows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan game player in ListGames method: %s", err)
			return nil, err
		}
		if i, ok := index[gameID]; ok {
			games[i].Players = append(games[i].Players, player)
		}
	}
	if err := playerRows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListGames method: %s", err)
		return nil, err
	}

	return games, nil
}

// GetGame retrieves a game and its participants.
func (postgresql *PostgreSQL) GetGame(ctx context.Context, id int64) (*models.Game, error) {
	game, err := scanGame(postgresql.db.QueryRowContext(ctx, getGameQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getGameQuery: %s", err)
		return nil, err
	}

	game.Players, err = postgresql.ListGamePlayers(ctx, id)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// CreateGame inserts a game and fills in its ID and creation time.
func (postgresql *PostgreSQL) CreateGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	err := postgresql.db.QueryRowContext(ctx, createGameQuery, game.Name, game.Date, game.Status, nullableString(game.Image), game.Notes).
		Scan(&game.ID, &game.CreatedAt)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createGameQuery: %s", err)
		return nil, classify(err)
	}
	if game.Players == nil {
		game.Players = []models.GamePlayer{}
	}
	return game, nil
}

// UpdateGame overwrites a game's editable fields.
func (postgresql *PostgreSQL) UpdateGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	err := postgresql.db.QueryRowContext(ctx, updateGameQuery, game.Name, game.Date, game.Status, nullableString(game.Image), game.Notes, game.ID).
		Scan(&game.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateGameQuery: %s", err)
		return nil, classify(err)
	}

	game.Players, err = postgresql.ListGamePlayers(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes a game; its participations and loans cascade.
func (postgresql *PostgreSQL) DeleteGame(ctx context.Context, id int64) error {
	return postgresql.execAffecting(ctx, deleteGameQuery, "deleteGameQuery", id)
}

// AddGamePlayer registers a player in a game. A repeated pair yields ErrConflict,
// a missing game or player ErrNotFound.
func (postgresql *PostgreSQL) AddGamePlayer(ctx context.Context, participation models.Participation) error {
	_, err := postgresql.db.ExecContext(ctx, addGamePlayerQuery,
		participation.GameID, participation.PlayerID, participation.Balance, participation.InitialBalance)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query addGamePlayerQuery: %s", err)
		return classify(err)
	}
	return nil
}

// SetGamePlayerBalance overwrites the balance of an existing participation.
func (postgresql *PostgreSQL) SetGamePlayerBalance(ctx context.Context, gameID, playerID int64, balance float64) error {
	return postgresql.execAffecting(ctx, setBalanceQuery, "setBalanceQuery", balance, gameID, playerID)
}

// ListGamePlayers returns the participants of a game in join order.
func (postgresql *PostgreSQL) ListGamePlayers(ctx context.Context, gameID int64) ([]models.GamePlayer, error) {
	rows, err := postgresql.db.QueryContext(ctx, listGamePlayersQuery, gameID)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listGamePlayersQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	players := make([]models.GamePlayer, 0)
	for rows.Next() {
		_, player, err := scanGamePlayer(rows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan game player in ListGamePlayers method: %s", err)
			return nil, err
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListGamePlayers method: %s", err)
		return nil, err
	}
	return players, nil
}

// ListLoans returns loans newest first, optionally restricted to one game.
func (postgresql *PostgreSQL) ListLoans(ctx context.Context, gameID int64) ([]models.Loan, error) {
	var rows *sql.Rows
	var err error
	if gameID > 0 {
		rows, err = postgresql.db.QueryContext(ctx, listGameLoansQuery, gameID)
	} else {
		rows, err = postgresql.db.QueryContext(ctx, listLoansQuery)
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query listLoansQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	loans := make([]models.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan loan in ListLoans method: %s", err)
			return nil, err
		}
		loans = append(loans, *loan)
	}

	if err := rows.Err(); err != nil {
		postgresql.log.Sugar().Errorf("The last error encountered by Rows.Scan in ListLoans method: %s", err)
		return nil, err
	}
	return loans, nil
}

// GetLoan retrieves a loan with lender and borrower names resolved.
func (postgresql *PostgreSQL) GetLoan(ctx context.Context, id int64) (*models.Loan, error) {
	loan, err := scanLoan(postgresql.db.QueryRowContext(ctx, getLoanQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getLoanQuery: %s", err)
		return nil, err
	}
	return loan, nil
}

// CreateLoan inserts a loan and returns it as stored, with player names resolved.
func (postgresql *PostgreSQL) CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	var id int64
	err := postgresql.db.QueryRowContext(ctx, createLoanQuery,
		loan.GameID, loan.Lender.ID, loan.Borrower.ID, loan.Amount, loan.RepaidAmount, loan.Status, loan.Date, loan.Notes).
		Scan(&id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query createLoanQuery: %s", err)
		return nil, classify(err)
	}
	return postgresql.GetLoan(ctx, id)
}

// UpdateLoan locks the loan row, lets mutate edit it and writes the result back
// in the same transaction, so concurrent repayments cannot lose each other's updates.
func (postgresql *PostgreSQL) UpdateLoan(ctx context.Context, id int64, mutate LoanMutation) (*models.Loan, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	loan, err := scanLoan(tx.QueryRowContext(ctx, getLoanForUpdateQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query getLoanForUpdateQuery: %s", err)
		return nil, err
	}

	if err := mutate(loan); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, updateLoanQuery, loan.Amount, loan.RepaidAmount, loan.Status, loan.Notes, id)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query updateLoanQuery: %s", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	loan.Remaining = ledger.LoanRemaining(*loan)
	return loan, nil
}

// DeleteLoan removes a loan. Balances are left untouched.
func (postgresql *PostgreSQL) DeleteLoan(ctx context.Context, id int64) error {
	return postgresql.execAffecting(ctx, deleteLoanQuery, "deleteLoanQuery", id)
}
