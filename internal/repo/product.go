package repo

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

// updatableColumns is the allowlist for partial updates. Field names outside
// it never reach the statement, so the column-to-placeholder mapping stays
// injection-safe no matter what the caller passes.
var updatableColumns = map[string]bool{
	"name":  true,
	"qty":   true,
	"price": true,
}

// UpdateProductFields applies a partial update touching only the supplied
// columns. Values travel as bind parameters.
func (r *GormRepo) UpdateProductFields(ctx context.Context, id int, fields map[string]any) error {
	assignments := make(map[string]any, len(fields))
	for col, v := range fields {
		if !updatableColumns[col] {
			return fmt.Errorf("column %q is not updatable", col)
		}
		assignments[col] = v
	}
	if len(assignments) == 0 {
		return fmt.Errorf("no updatable columns supplied")
	}

	res := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(assignments)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id int) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchProducts matches q as a case-insensitive substring of name or sku.
// LOWER(...) LIKE keeps the behavior identical on postgres and sqlite. An
// empty q matches everything.
func (r *GormRepo) SearchProducts(ctx context.Context, q string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(q) + "%"

	var items []models.Product
	if err := r.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
