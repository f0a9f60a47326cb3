package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"voyager/internal/models/db_models"
)

type POIRepository interface {
	ListAll(ctx context.Context) ([]db_models.CatalogPOI, error)
	ReplaceAll(ctx context.Context, rows []db_models.CatalogPOI) error
	Count(ctx context.Context) (int64, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

// ListAll returns every row ordered by city then catalog position.
func (r *poiRepository) ListAll(ctx context.Context) ([]db_models.CatalogPOI, error) {
	var rows []db_models.CatalogPOI
	err := r.db.WithContext(ctx).
		Order("city").
		Order("position").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceAll swaps the whole table contents in one transaction.
func (r *poiRepository) ReplaceAll(ctx context.Context, rows []db_models.CatalogPOI) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&db_models.CatalogPOI{}).Error; err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert catalog: %w", err)
		}
		return nil
	})
}

func (r *poiRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.CatalogPOI{}).Count(&n).Error
	return n, err
}
