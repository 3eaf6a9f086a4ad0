package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/events"
	"github.com/inventario-app/inventario/internal/logging"
	"github.com/inventario-app/inventario/internal/models"
	"github.com/inventario-app/inventario/internal/repo"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type Summary struct {
	TotalProducts int     `json:"totalProducts"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalValue    float64 `json:"totalValue"`
}

type CreateProductInput struct {
	SKU   string
	Name  string
	Qty   int
	Price float64
}

// List returns all products ordered by name plus the inventory summary. The
// summary is recomputed on every call and never persisted.
func (s *ProductService) List(ctx context.Context) ([]models.Product, Summary, error) {
	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, Summary{}, err
	}
	return products, summarize(products), nil
}

// summarize rounds the total value half-up to 2 decimal places, once, at
// response time. decimal keeps the qty*price accumulation exact.
func summarize(products []models.Product) Summary {
	totalQty := 0
	totalValue := decimal.Zero
	for _, p := range products {
		totalQty += p.Qty
		totalValue = totalValue.Add(
			decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Qty))),
		)
	}
	return Summary{
		TotalProducts: len(products),
		TotalQuantity: totalQty,
		TotalValue:    totalValue.Round(2).InexactFloat64(),
	}
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	return s.Repo.ProductByID(ctx, id)
}

func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, query)
}

// Create inserts a new product after an explicit SKU uniqueness check. The
// check races with concurrent creates; the store's unique constraint closes
// the window and its rejection is reported as the same duplicate-SKU error.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput, actor string) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.create")

	_, err := s.Repo.ProductBySKU(ctx, in.SKU)
	if err == nil {
		return nil, fmt.Errorf("sku %s: %w", in.SKU, ErrDuplicateSKU)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := models.Product{
		SKU:   in.SKU,
		Name:  in.Name,
		Qty:   in.Qty,
		Price: in.Price,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("sku %s: %w", in.SKU, ErrDuplicateSKU)
		}
		return nil, err
	}

	l.Info("product_created", "product_id", product.ID, "sku", product.SKU, "actor", actor)
	s.publish(ctx, events.ProductEvent{
		Type:      events.TypeProductCreated,
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Actor:     actor,
	})

	return &product, nil
}

// Update applies a partial update: only the supplied fields change, the rest
// keep their prior values. The record is re-fetched so the caller sees the
// stored state, updated_at included.
func (s *ProductService) Update(ctx context.Context, id int, fields map[string]any, actor string) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.update")

	if _, err := s.Repo.ProductByID(ctx, id); err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	if err := s.Repo.UpdateProductFields(ctx, id, fields); err != nil {
		return nil, err
	}

	product, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.Info("product_updated", "product_id", product.ID, "sku", product.SKU, "actor", actor)
	s.publish(ctx, events.ProductEvent{
		Type:      events.TypeProductUpdated,
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Actor:     actor,
	})

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int, actor string) error {
	l := logging.FromContext(ctx).With("svc", "product.delete")

	existing, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	l.Info("product_deleted", "product_id", existing.ID, "sku", existing.SKU, "actor", actor)
	s.publish(ctx, events.ProductEvent{
		Type:      events.TypeProductDeleted,
		ProductID: existing.ID,
		SKU:       existing.SKU,
		Name:      existing.Name,
		Actor:     actor,
	})

	return nil
}

// publish reports the event on a best-effort basis; a broker failure never
// fails the request.
func (s *ProductService) publish(ctx context.Context, event events.ProductEvent) {
	if err := s.Producer.Publish(ctx, event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "type", event.Type, "error", err)
	}
}
