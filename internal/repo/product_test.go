package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return New(db)
}

func TestUpdateProductFieldsRejectsUnknownColumn(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	p := models.Product{SKU: "LAP001", Name: "Laptop", Qty: 1, Price: 100}
	require.NoError(t, r.CreateProduct(ctx, &p))

	err := r.UpdateProductFields(ctx, int(p.ID), map[string]any{"sku": "HAX999"})
	require.Error(t, err)

	stored, err := r.ProductByID(ctx, int(p.ID))
	require.NoError(t, err)
	require.Equal(t, "LAP001", stored.SKU)
}

func TestUpdateProductFieldsMissingRow(t *testing.T) {
	r := newTestRepo(t)

	err := r.UpdateProductFields(context.Background(), 9999, map[string]any{"qty": 5})
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateProductDuplicateSKUTranslates(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateProduct(ctx, &models.Product{SKU: "LAP001", Name: "A", Qty: 1, Price: 1}))

	err := r.CreateProduct(ctx, &models.Product{SKU: "LAP001", Name: "B", Qty: 2, Price: 2})
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, p := range []models.Product{
		{SKU: "LAP001", Name: "Laptop Dell", Qty: 1, Price: 1},
		{SKU: "MON002", Name: "Monitor", Qty: 1, Price: 1},
	} {
		p := p
		require.NoError(t, r.CreateProduct(ctx, &p))
	}

	items, err := r.SearchProducts(ctx, "LAPTOP")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Laptop Dell", items[0].Name)

	items, err = r.SearchProducts(ctx, "mon")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "MON002", items[0].SKU)
}
