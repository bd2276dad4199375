package postgres

import (
	"context"

	"fleetcore/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO represents a named counter row.
// One row per entity kind; the value column holds the last number handed
// out.
type SequenceDTO struct {
	Kind  string `gorm:"primaryKey"`
	Value int64
}

// TableName specifies the database table name for sequence counters.
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceGenerator hands out entity numbers from the sequences table.
// The increment is a single upsert statement, so it is atomic on its own
// and, when run on a unit of work's transaction, commits or rolls back with
// the entity the number was assigned to. Concurrent callers serialize on
// the counter row's lock and can never observe the same value.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a sequence generator on the given
// database handle, which may be a transaction.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next returns the next number for the given kind, starting at 1.
func (g *GormSequenceGenerator) Next(ctx context.Context, kind string) (int64, error) {
	if kind == "" {
		return 0, errs.NewValueIsRequiredError("kind")
	}

	var value int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (kind, value)
		VALUES (?, 1)
		ON CONFLICT (kind)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, kind).Scan(&value).Error
	if err != nil {
		return 0, errs.NewStorageFailureError("increment sequence", err)
	}

	return value, nil
}
