package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/inventario-app/inventario/internal/httperr"
	"github.com/inventario-app/inventario/internal/logging"
	authmw "github.com/inventario-app/inventario/internal/middleware/auth"
	"github.com/inventario-app/inventario/internal/models"
	"github.com/inventario-app/inventario/internal/service"
	"github.com/inventario-app/inventario/internal/validation"
)

type ProductHandler struct {
	Svc *service.ProductService
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	products, summary, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_products_failed", "status", 500, "error", err)
		return httperr.Internal("could not fetch the products")
	}
	if products == nil {
		products = []models.Product{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
		"summary":  summary,
	})
}

func (h *ProductHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, fe := validation.ProductID(c.Param("id"))
	if fe != nil {
		return httperr.Validation([]validation.FieldError{*fe})
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(fmt.Sprintf("no product exists with the id %d", id))
		}
		l.Error("get_product_failed", "status", 500, "product_id", id, "error", err)
		return httperr.Internal("could not fetch the product")
	}

	return c.JSON(http.StatusOK, echo.Map{"product": product})
}

func (h *ProductHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	query := c.Param("query")

	products, err := h.Svc.Search(ctx, query)
	if err != nil {
		l.Error("search_products_failed", "status", 500, "query", query, "error", err)
		return httperr.Internal("could not run the search")
	}
	if products == nil {
		products = []models.Product{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products":     products,
		"searchQuery":  query,
		"totalResults": len(products),
	})
}

func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	raw, err := bindJSON(c)
	if err != nil {
		return err
	}

	fields, ferrs := validation.CreateProductSchema.Validate(validation.SanitizeMap(raw))
	if ferrs != nil {
		return httperr.Validation(ferrs)
	}

	in := service.CreateProductInput{
		SKU:   fields["sku"].(string),
		Name:  fields["name"].(string),
		Qty:   fields["qty"].(int),
		Price: fields["price"].(float64),
	}

	actor, _ := authmw.CurrentUser(c)
	product, err := h.Svc.Create(ctx, in, actor.Username)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSKU) {
			return httperr.Conflict(fmt.Sprintf("a product with the SKU '%s' already exists", in.SKU))
		}
		l.Error("create_product_failed", "status", 500, "sku", in.SKU, "error", err)
		return httperr.Internal("could not create the product")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "product created",
		"product": product,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, fe := validation.ProductID(c.Param("id"))
	if fe != nil {
		return httperr.Validation([]validation.FieldError{*fe})
	}

	// Existence decides before the body is judged: an update against a
	// missing product is a 404 even when the body is also bad.
	if _, err := h.Svc.Get(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(fmt.Sprintf("no product exists with the id %d", id))
		}
		l.Error("update_product_failed", "status", 500, "product_id", id, "error", err)
		return httperr.Internal("could not update the product")
	}

	raw, err := bindJSON(c)
	if err != nil {
		return err
	}

	fields, ferrs := validation.UpdateProductSchema.Validate(validation.SanitizeMap(raw))
	if ferrs != nil {
		return httperr.Validation(ferrs)
	}

	actor, _ := authmw.CurrentUser(c)
	product, err := h.Svc.Update(ctx, id, fields, actor.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			return httperr.BadRequest("must supply at least one field to update")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return httperr.NotFound(fmt.Sprintf("no product exists with the id %d", id))
		default:
			l.Error("update_product_failed", "status", 500, "product_id", id, "error", err)
			return httperr.Internal("could not update the product")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "product updated",
		"product": product,
	})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, fe := validation.ProductID(c.Param("id"))
	if fe != nil {
		return httperr.Validation([]validation.FieldError{*fe})
	}

	actor, _ := authmw.CurrentUser(c)
	if err := h.Svc.Delete(ctx, id, actor.Username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(fmt.Sprintf("no product exists with the id %d", id))
		}
		l.Error("delete_product_failed", "status", 500, "product_id", id, "error", err)
		return httperr.Internal("could not delete the product")
	}

	return c.NoContent(http.StatusNoContent)
}
