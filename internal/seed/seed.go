package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/savings/internal/assumptions"
	"github.com/Simplici0/savings/internal/savings"
)

// Config contains the values required by startup seed.
type Config struct {
	Assumptions savings.Assumptions
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way. Existing assumptions are
// never overwritten.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureAssumptions(ctx, tx, cfg.Assumptions, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureAssumptions(ctx context.Context, tx *sql.Tx, a savings.Assumptions, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM assumptions WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check assumptions existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := assumptions.PutTx(ctx, tx, a); err != nil {
		return fmt.Errorf("insert default assumptions: %w", err)
	}
	stats.Inserts++
	return nil
}
