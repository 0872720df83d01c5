// Command checkdb reports rows that the API would refuse to create today:
// loans without a positive amount and players whose names collide regardless of case.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"teenpatti_tracker/internal/config"
	"teenpatti_tracker/internal/pkg/logger"
	"teenpatti_tracker/internal/storage"
)

func main() {
	l, err := logger.CreateLogger(config.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}

	db, err := storage.NewPostgreSQL(config.DatabaseURI, l)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	const checkTimeout = 30 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := report(ctx, db); err != nil {
		l.Sugar().Errorf("Error checking DB: %s", err)
		db.Close()
		os.Exit(1)
	}
}

func report(ctx context.Context, db *storage.PostgreSQL) error {
	out := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer out.Flush()

	fmt.Fprintln(out, "Checking loans without a positive amount...")
	loans, err := db.InvalidLoans(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Invalid loans: %d\n", len(loans))
	if len(loans) > 0 {
		fmt.Fprintln(out, "id\tgame_id\tlender_id\tborrower_id\tamount")
		for _, loan := range loans {
			amount := "NULL"
			if loan.Amount != nil {
				amount = fmt.Sprintf("%g", *loan.Amount)
			}
			fmt.Fprintf(out, "%d\t%d\t%d\t%d\t%s\n", loan.ID, loan.GameID, loan.LenderID, loan.BorrowerID, amount)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checking duplicate player names (case-insensitive)...")
	groups, err := db.DuplicatePlayerNames(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Duplicate name groups: %d\n", len(groups))
	if len(groups) > 0 {
		fmt.Fprintln(out, "name\tids\tcount")
		for _, group := range groups {
			fmt.Fprintf(out, "%s\t%s\t%d\n", group.Name, strings.Join(group.PlayerIDs, ","), group.Count)
		}
	}
	return nil
}
