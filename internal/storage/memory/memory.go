// Package memory is an in-memory implementation of storage.Storage. It is safe
// for concurrent use and is primarily intended for tests and local runs without PostgreSQL.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"teenpatti_tracker/internal/ledger"
	"teenpatti_tracker/internal/models"
	"teenpatti_tracker/internal/storage"
)

type participation struct {
	seq            int64
	gameID         int64
	playerID       int64
	balance        float64
	initialBalance float64
}

type loanRecord struct {
	id           int64
	gameID       int64
	lenderID     int64
	borrowerID   int64
	amount       float64
	repaidAmount float64
	status       string
	date         string
	notes        string
	createdAt    time.Time
}

// Store keeps every table in maps guarded by one lock and applies the same
// uniqueness rules and cascades as the SQL schema.
type Store struct {
	mu             sync.RWMutex
	nextID         int64
	now            func() time.Time
	players        map[int64]models.Player
	games          map[int64]models.Game
	participations []participation
	loans          map[int64]loanRecord
}

var _ storage.Storage = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		nextID:  1,
		now:     time.Now,
		players: make(map[int64]models.Player),
		games:   make(map[int64]models.Game),
		loans:   make(map[int64]loanRecord),
	}
}

func (s *Store) nextIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// Close is a no-op.
func (s *Store) Close() {}

// Player methods ---------------------------------------------------------------

func (s *Store) ListPlayers(_ context.Context) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]models.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, clonePlayer(p))
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID > players[j].ID })
	return players, nil
}

func (s *Store) GetPlayer(_ context.Context, id int64) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	p = clonePlayer(p)
	return &p, nil
}

func (s *Store) FindPlayerByName(_ context.Context, name string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.playerByNameLocked(name, 0); ok {
		p = clonePlayer(p)
		return &p, nil
	}
	return nil, storage.ErrNotFound
}

func (s *Store) playerByNameLocked(name string, exceptID int64) (models.Player, bool) {
	for _, p := range s.players {
		if p.ID != exceptID && strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return models.Player{}, false
}

func (s *Store) CreatePlayer(_ context.Context, player *models.Player) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.playerByNameLocked(player.Name, 0); exists {
		return nil, storage.ErrConflict
	}
	player.ID = s.nextIDLocked()
	player.CreatedAt = s.now().UTC()
	s.players[player.ID] = clonePlayer(*player)
	return player, nil
}

func (s *Store) UpdatePlayer(_ context.Context, player *models.Player) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.players[player.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if _, exists := s.playerByNameLocked(player.Name, player.ID); exists {
		return nil, storage.ErrConflict
	}
	player.CreatedAt = existing.CreatedAt
	s.players[player.ID] = clonePlayer(*player)
	return player, nil
}

func (s *Store) DeletePlayer(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.players, id)

	kept := s.participations[:0]
	for _, p := range s.participations {
		if p.playerID != id {
			kept = append(kept, p)
		}
	}
	s.participations = kept

	for loanID, loan := range s.loans {
		if loan.lenderID == id || loan.borrowerID == id {
			delete(s.loans, loanID)
		}
	}
	return nil
}

// Game methods -----------------------------------------------------------------

func (s *Store) ListGames(_ context.Context) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, s.gameViewLocked(g))
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID > games[j].ID })
	return games, nil
}

func (s *Store) GetGame(_ context.Context, id int64) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	game := s.gameViewLocked(g)
	return &game, nil
}

func (s *Store) CreateGame(_ context.Context, game *models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = s.nextIDLocked()
	game.CreatedAt = s.now().UTC()
	game.Players = []models.GamePlayer{}
	s.games[game.ID] = cloneGame(*game)
	return game, nil
}

func (s *Store) UpdateGame(_ context.Context, game *models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.games[game.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	game.CreatedAt = existing.CreatedAt
	s.games[game.ID] = cloneGame(*game)
	game.Players = s.gamePlayersLocked(game.ID)
	return game, nil
}

func (s *Store) DeleteGame(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.games, id)

	kept := s.participations[:0]
	for _, p := range s.participations {
		if p.gameID != id {
			kept = append(kept, p)
		}
	}
	s.participations = kept

	for loanID, loan := range s.loans {
		if loan.gameID == id {
			delete(s.loans, loanID)
		}
	}
	return nil
}

func (s *Store) gameViewLocked(g models.Game) models.Game {
	game := cloneGame(g)
	game.Players = s.gamePlayersLocked(g.ID)
	return game
}

// Participation methods --------------------------------------------------------

func (s *Store) AddGamePlayer(_ context.Context, p models.Participation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[p.GameID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.players[p.PlayerID]; !ok {
		return storage.ErrNotFound
	}
	if s.participationIndexLocked(p.GameID, p.PlayerID) >= 0 {
		return storage.ErrConflict
	}
	s.participations = append(s.participations, participation{
		seq:            s.nextIDLocked(),
		gameID:         p.GameID,
		playerID:       p.PlayerID,
		balance:        p.Balance,
		initialBalance: p.InitialBalance,
	})
	return nil
}

func (s *Store) SetGamePlayerBalance(_ context.Context, gameID, playerID int64, balance float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.participationIndexLocked(gameID, playerID)
	if i < 0 {
		return storage.ErrNotFound
	}
	s.participations[i].balance = balance
	return nil
}

func (s *Store) ListGamePlayers(_ context.Context, gameID int64) ([]models.GamePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gamePlayersLocked(gameID), nil
}

func (s *Store) participationIndexLocked(gameID, playerID int64) int {
	for i, p := range s.participations {
		if p.gameID == gameID && p.playerID == playerID {
			return i
		}
	}
	return -1
}

func (s *Store) gamePlayersLocked(gameID int64) []models.GamePlayer {
	players := make([]models.GamePlayer, 0)
	for _, p := range s.participations {
		if p.gameID != gameID {
			continue
		}
		player := s.players[p.playerID]
		players = append(players, models.GamePlayer{
			ID:             player.ID,
			Name:           player.Name,
			Image:          cloneString(player.Image),
			Balance:        p.balance,
			InitialBalance: p.initialBalance,
		})
	}
	return players
}

// Loan methods -----------------------------------------------------------------

func (s *Store) ListLoans(_ context.Context, gameID int64) ([]models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loans := make([]models.Loan, 0, len(s.loans))
	for _, rec := range s.loans {
		if gameID > 0 && rec.gameID != gameID {
			continue
		}
		loans = append(loans, s.loanViewLocked(rec))
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ID > loans[j].ID })
	return loans, nil
}

func (s *Store) GetLoan(_ context.Context, id int64) (*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.loans[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	loan := s.loanViewLocked(rec)
	return &loan, nil
}

func (s *Store) CreateLoan(_ context.Context, loan *models.Loan) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[loan.GameID]; !ok {
		return nil, storage.ErrNotFound
	}
	if _, ok := s.players[loan.Lender.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	if _, ok := s.players[loan.Borrower.ID]; !ok {
		return nil, storage.ErrNotFound
	}

	rec := loanRecord{
		id:           s.nextIDLocked(),
		gameID:       loan.GameID,
		lenderID:     loan.Lender.ID,
		borrowerID:   loan.Borrower.ID,
		amount:       loan.Amount,
		repaidAmount: loan.RepaidAmount,
		status:       loan.Status,
		date:         loan.Date,
		notes:        loan.Notes,
		createdAt:    s.now().UTC(),
	}
	s.loans[rec.id] = rec

	created := s.loanViewLocked(rec)
	return &created, nil
}

func (s *Store) UpdateLoan(_ context.Context, id int64, mutate storage.LoanMutation) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.loans[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	loan := s.loanViewLocked(rec)
	if err := mutate(&loan); err != nil {
		return nil, err
	}

	rec.amount = loan.Amount
	rec.repaidAmount = loan.RepaidAmount
	rec.status = loan.Status
	rec.notes = loan.Notes
	s.loans[id] = rec

	updated := s.loanViewLocked(rec)
	return &updated, nil
}

func (s *Store) DeleteLoan(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loans[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.loans, id)
	return nil
}

func (s *Store) loanViewLocked(rec loanRecord) models.Loan {
	loan := models.Loan{
		ID:           rec.id,
		GameID:       rec.gameID,
		Lender:       models.PlayerRef{ID: rec.lenderID, Name: s.players[rec.lenderID].Name},
		Borrower:     models.PlayerRef{ID: rec.borrowerID, Name: s.players[rec.borrowerID].Name},
		Amount:       rec.amount,
		RepaidAmount: rec.repaidAmount,
		Status:       rec.status,
		Date:         rec.date,
		Notes:        rec.notes,
		CreatedAt:    rec.createdAt,
	}
	loan.Remaining = ledger.LoanRemaining(loan)
	return loan
}

// helpers ----------------------------------------------------------------------

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func clonePlayer(p models.Player) models.Player {
	p.Image = cloneString(p.Image)
	return p
}

func cloneGame(g models.Game) models.Game {
	g.Image = cloneString(g.Image)
	g.Players = nil
	return g
}
