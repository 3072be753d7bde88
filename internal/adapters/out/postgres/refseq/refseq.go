// Package refseq allocates monthly reference sequence numbers. Quote,
// booking, and payment references embed a per-month counter; the counter rows
// are bumped with an upsert so concurrent allocations in separate
// transactions never hand out the same number.
package refseq

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// CounterDTO represents one scope's counter for one month.
type CounterDTO struct {
	Scope  string `gorm:"type:varchar(32);primaryKey"`
	Period string `gorm:"type:varchar(6);primaryKey"`
	Value  int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for reference counters.
func (CounterDTO) TableName() string {
	return "reference_counters"
}

// Next returns the next sequence number for the scope in the month containing
// now. The row-level lock taken by the UPDATE serializes concurrent callers,
// so the number is unique even across separate transactions.
func Next(ctx context.Context, db *gorm.DB, scope string, now time.Time) (int, error) {
	period := now.Format("200601")

	var value int
	err := db.WithContext(ctx).Raw(`
		INSERT INTO reference_counters (scope, period, value)
		VALUES (?, ?, 1)
		ON CONFLICT (scope, period)
		DO UPDATE SET value = reference_counters.value + 1
		RETURNING value
	`, scope, period).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
