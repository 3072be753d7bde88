package quoterepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/adapters/out/postgres/refseq"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

const sequenceScope = "quotes"

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote to the database.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quote to the database. Fee lines are replaced
// wholesale so a repriced quote never keeps stale lines.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Where("quote_id = ?", dto.ID).Delete(&QuoteFeeDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatusGuard persists the status flip only if the stored row is
// still in the expected status. A guard miss means a concurrent transition
// won the race; the caller gets a version conflict and must not proceed.
func (r *GormQuoteRepository) UpdateWithStatusGuard(
	ctx context.Context,
	aggregate *quote.Quote,
	expected quote.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&QuoteDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(map[string]interface{}{
			"status":           dto.Status,
			"valid_until":      dto.ValidUntil,
			"rejection_reason": dto.RejectionReason,
			"notes":            dto.Notes,
			"approved_by_kind": dto.ApprovedByKind,
			"approved_by_id":   dto.ApprovedByID,
			"approved_at":      dto.ApprovedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("quote status", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quote by ID with its fee lines in entry order.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	err := r.db.WithContext(ctx).
		Preload("Fees", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExpirePending flips every pending quote whose validity lapsed before now to
// expired in one conditional update. Quotes approved, rejected, or converted
// after this statement's snapshot are no longer pending and stay untouched,
// so the sweep never overwrites a concurrent decision.
func (r *GormQuoteRepository) ExpirePending(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).Model(&QuoteDTO{}).
		Where("status = ? AND valid_until < ?", int(quote.Pending), now).
		Update("status", int(quote.Expired))
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// NextSequence returns the next quote reference sequence number for the month
// containing now.
func (r *GormQuoteRepository) NextSequence(ctx context.Context, now time.Time) (int, error) {
	return refseq.Next(ctx, r.db, sequenceScope, now)
}
