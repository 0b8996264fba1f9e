package repositories

import (
	"context"
	"fmt"
	"strings"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/pagination"

	"gorm.io/gorm"
)

var optionTables = map[string]string{
	GroupCategory: "categories",
	GroupProduct:  "products",
	GroupCustomer: "customers",
}

// OptionDimensions lists the dimensions that can be listed as filter options
func OptionDimensions() []string {
	return []string{GroupCategory, GroupProduct, GroupCustomer, GroupRegion}
}

// optionsRepository implements OptionsRepositoryInterface
type optionsRepository struct {
	db *gorm.DB
}

// NewOptionsRepository creates a new filter options repository
func NewOptionsRepository(db *gorm.DB) OptionsRepositoryInterface {
	return &optionsRepository{db: db}
}

// ListOptions returns up to limit active lookup rows ordered by (name, id), starting after the cursor row
func (r *optionsRepository) ListOptions(ctx context.Context, dimension, search string, after *pagination.Cursor, limit int) ([]models.OptionItem, error) {
	if dimension == GroupRegion {
		return r.listRegions(ctx, search, after, limit)
	}

	table, ok := optionTables[dimension]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGrouping, dimension)
	}

	q := r.db.WithContext(ctx).
		Table(table).
		Select("CAST(id AS TEXT) AS id, name AS name").
		Where("is_active = ?", true)

	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if after != nil {
		q = q.Where("(name > ? OR (name = ? AND CAST(id AS TEXT) > ?))", after.SortValue, after.SortValue, after.ID)
	}

	var items []models.OptionItem
	if err := q.Order("name ASC").Order("id ASC").Limit(limit).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s options: %w", dimension, err)
	}

	return items, nil
}

// listRegions lists distinct regions of active customers; the region name doubles as its id
func (r *optionsRepository) listRegions(ctx context.Context, search string, after *pagination.Cursor, limit int) ([]models.OptionItem, error) {
	q := r.db.WithContext(ctx).
		Table("customers").
		Select("region AS id, region AS name").
		Where("is_active = ?", true).
		Where("region IS NOT NULL AND region <> ''")

	if search != "" {
		q = q.Where("LOWER(region) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if after != nil {
		q = q.Where("region > ?", after.ID)
	}

	var items []models.OptionItem
	if err := q.Group("region").Order("region ASC").Limit(limit).Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list region options: %w", err)
	}

	return items, nil
}
