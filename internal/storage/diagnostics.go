package storage

import (
	"context"
	"database/sql"
	"strings"
)

// InvalidLoan is a loan whose amount is missing or not positive.
type InvalidLoan struct {
	ID         int64
	GameID     int64
	LenderID   int64
	BorrowerID int64
	Amount     *float64
}

// DuplicateName groups players whose names collide regardless of case.
type DuplicateName struct {
	Name      string
	PlayerIDs []string
	Count     int
}

// InvalidLoans lists loans that could not have been created through the API.
func (postgresql *PostgreSQL) InvalidLoans(ctx context.Context) ([]InvalidLoan, error) {
	rows, err := postgresql.db.QueryContext(ctx, invalidLoansQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query invalidLoansQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	loans := make([]InvalidLoan, 0)
	for rows.Next() {
		var loan InvalidLoan
		var amount sql.NullFloat64
		if err := rows.Scan(&loan.ID, &loan.GameID, &loan.LenderID, &loan.BorrowerID, &amount); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan loan in InvalidLoans method: %s", err)
			return nil, err
		}
		if amount.Valid {
			loan.Amount = &amount.Float64
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loans, nil
}

// DuplicatePlayerNames lists case-insensitive name collisions left over from
// data written before the unique index existed.
func (postgresql *PostgreSQL) DuplicatePlayerNames(ctx context.Context) ([]DuplicateName, error) {
	rows, err := postgresql.db.QueryContext(ctx, duplicateNamesQuery)
	if err != nil {
		postgresql.log.Sugar().Errorf("Failed to execute a query duplicateNamesQuery: %s", err)
		return nil, err
	}
	defer rows.Close()

	groups := make([]DuplicateName, 0)
	for rows.Next() {
		var group DuplicateName
		var ids string
		if err := rows.Scan(&group.Name, &ids, &group.Count); err != nil {
			postgresql.log.Sugar().Errorf("Failed to scan name group in DuplicatePlayerNames method: %s", err)
			return nil, err
		}
		group.PlayerIDs = strings.Split(ids, ",")
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
