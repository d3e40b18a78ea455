package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSalesOrderRepository implements ports.SalesOrderRepository using GORM.
type GormSalesOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects saved aggregates so their events can be written
// to the outbox on commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate *salesorder.SalesOrder)
}

func NewGormSalesOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order at version 1.
func (r *GormSalesOrderRepository) Add(ctx context.Context, aggregate *salesorder.SalesOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, aggregate.Version()+1)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: order number %d is already used by account %s",
				ports.ErrSalesOrderAlreadyExists, dto.OrderNumber, aggregate.AccountID())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order only if the stored version is still the one it was
// loaded at, and bumps the version.
func (r *GormSalesOrderRepository) Update(ctx context.Context, aggregate *salesorder.SalesOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, aggregate.Version()+1)
	result := r.db.WithContext(ctx).Model(&SalesOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"order_name": dto.OrderName,
			"status":     dto.Status,
			"version":    dto.Version,
			"updated_at": dto.UpdatedAt,
			"document":   dto.Document,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.updateConflict(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSalesOrderRepository) Get(ctx context.Context, id kernel.UUID) (*salesorder.SalesOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SalesOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("salesOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormSalesOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SalesOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("salesOrder", id.String())
	}
	return nil
}

func (r *GormSalesOrderRepository) ExistsWithName(
	ctx context.Context,
	accountID kernel.AccountID,
	orderName string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&SalesOrderDTO{}).
		Where("account_id = ? AND order_name = ?", accountID.UUID().Bytes(), orderName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// updateConflict tells a missing order apart from a stale version.
func (r *GormSalesOrderRepository) updateConflict(ctx context.Context, aggregate *salesorder.SalesOrder) error {
	var stored int
	err := r.db.WithContext(ctx).Model(&SalesOrderDTO{}).
		Select("version").
		Where("id = ?", aggregate.ID().Bytes()).
		Scan(&stored).Error
	if err != nil {
		return err
	}

	if stored == 0 {
		return errs.NewObjectNotFoundError("salesOrder", aggregate.ID().String())
	}
	return errs.NewVersionIsInvalidErrorWithCause("version",
		fmt.Errorf("order %s is at version %d, update was based on %d", aggregate.ID(), stored, aggregate.Version()))
}
