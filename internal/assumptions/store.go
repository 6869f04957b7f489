package assumptions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/savings/internal/savings"
)

// ErrNotFound is returned when the assumptions singleton has not been seeded.
var ErrNotFound = errors.New("assumptions singleton not found")

// Store reads and writes the centrally managed assumptions table.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store over a migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the stored assumptions.
func (s *Store) Get(ctx context.Context) (savings.Assumptions, error) {
	var a savings.Assumptions
	err := s.db.QueryRowContext(ctx, `
		SELECT
			storage_cost_per_sqm,
			storage_merchant_overhead_multiplier,
			handling_in_labor_cost_per_minute,
			handling_in_merchant_minutes_per_item,
			handling_in_alternate_minutes_per_item,
			handling_in_alternate_efficiency_multiplier,
			handling_out_labor_cost_per_minute,
			handling_out_merchant_minutes_per_order,
			handling_out_alternate_minutes_per_order,
			handling_out_alternate_efficiency_multiplier,
			delivery_merchant_cost_per_order,
			delivery_alternate_cost_per_order,
			overhead_merchant_rate,
			overhead_alternate
		FROM assumptions
		WHERE id = 1
	`).Scan(
		&a.Storage.CostPerSqm,
		&a.Storage.MerchantOverheadMultiplier,
		&a.HandlingIn.LaborCostPerMinute,
		&a.HandlingIn.MerchantMinutesPerItem,
		&a.HandlingIn.AlternateMinutesPerItem,
		&a.HandlingIn.AlternateEfficiencyMultiplier,
		&a.HandlingOut.LaborCostPerMinute,
		&a.HandlingOut.MerchantMinutesPerOrder,
		&a.HandlingOut.AlternateMinutesPerOrder,
		&a.HandlingOut.AlternateEfficiencyMultiplier,
		&a.Delivery.MerchantCostPerOrder,
		&a.Delivery.AlternateCostPerOrder,
		&a.Overhead.MerchantRate,
		&a.Overhead.AlternateOverhead,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return savings.Assumptions{}, ErrNotFound
		}
		return savings.Assumptions{}, fmt.Errorf("query assumptions: %w", err)
	}
	return a, nil
}

// Exists reports whether the singleton row is present.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM assumptions WHERE id = 1)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check assumptions existence: %w", err)
	}
	return exists, nil
}

// Put validates and upserts the assumptions singleton.
func (s *Store) Put(ctx context.Context, a savings.Assumptions) error {
	return put(ctx, s.db, a)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// PutTx is Put inside a caller-owned transaction.
func PutTx(ctx context.Context, tx *sql.Tx, a savings.Assumptions) error {
	return put(ctx, tx, a)
}

func put(ctx context.Context, db execer, a savings.Assumptions) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("validate assumptions: %w", err)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO assumptions (
			id,
			storage_cost_per_sqm,
			storage_merchant_overhead_multiplier,
			handling_in_labor_cost_per_minute,
			handling_in_merchant_minutes_per_item,
			handling_in_alternate_minutes_per_item,
			handling_in_alternate_efficiency_multiplier,
			handling_out_labor_cost_per_minute,
			handling_out_merchant_minutes_per_order,
			handling_out_alternate_minutes_per_order,
			handling_out_alternate_efficiency_multiplier,
			delivery_merchant_cost_per_order,
			delivery_alternate_cost_per_order,
			overhead_merchant_rate,
			overhead_alternate
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			storage_cost_per_sqm = excluded.storage_cost_per_sqm,
			storage_merchant_overhead_multiplier = excluded.storage_merchant_overhead_multiplier,
			handling_in_labor_cost_per_minute = excluded.handling_in_labor_cost_per_minute,
			handling_in_merchant_minutes_per_item = excluded.handling_in_merchant_minutes_per_item,
			handling_in_alternate_minutes_per_item = excluded.handling_in_alternate_minutes_per_item,
			handling_in_alternate_efficiency_multiplier = excluded.handling_in_alternate_efficiency_multiplier,
			handling_out_labor_cost_per_minute = excluded.handling_out_labor_cost_per_minute,
			handling_out_merchant_minutes_per_order = excluded.handling_out_merchant_minutes_per_order,
			handling_out_alternate_minutes_per_order = excluded.handling_out_alternate_minutes_per_order,
			handling_out_alternate_efficiency_multiplier = excluded.handling_out_alternate_efficiency_multiplier,
			delivery_merchant_cost_per_order = excluded.delivery_merchant_cost_per_order,
			delivery_alternate_cost_per_order = excluded.delivery_alternate_cost_per_order,
			overhead_merchant_rate = excluded.overhead_merchant_rate,
			overhead_alternate = excluded.overhead_alternate,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.Storage.CostPerSqm,
		a.Storage.MerchantOverheadMultiplier,
		a.HandlingIn.LaborCostPerMinute,
		a.HandlingIn.MerchantMinutesPerItem,
		a.HandlingIn.AlternateMinutesPerItem,
		a.HandlingIn.AlternateEfficiencyMultiplier,
		a.HandlingOut.LaborCostPerMinute,
		a.HandlingOut.MerchantMinutesPerOrder,
		a.HandlingOut.AlternateMinutesPerOrder,
		a.HandlingOut.AlternateEfficiencyMultiplier,
		a.Delivery.MerchantCostPerOrder,
		a.Delivery.AlternateCostPerOrder,
		a.Overhead.MerchantRate,
		a.Overhead.AlternateOverhead,
	)
	if err != nil {
		return fmt.Errorf("upsert assumptions: %w", err)
	}
	return nil
}
