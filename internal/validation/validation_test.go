package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginSchemaValid(t *testing.T) {
	out, errs := LoginSchema.Validate(map[string]any{
		"username": "admin_01",
		"password": "secret123",
	})
	require.Nil(t, errs)
	require.Equal(t, "admin_01", out["username"])
	require.Equal(t, "secret123", out["password"])
}

func TestLoginSchemaReportsAllErrors(t *testing.T) {
	_, errs := LoginSchema.Validate(map[string]any{
		"username": "bad user!",
		"password": "123",
	})
	require.Len(t, errs, 2)

	byField := map[string]FieldError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	require.Equal(t, CodeInvalidString, byField["username"].Code)
	require.Equal(t, CodeTooSmall, byField["password"].Code)
}

func TestLoginSchemaMissingFields(t *testing.T) {
	_, errs := LoginSchema.Validate(map[string]any{})
	require.Len(t, errs, 2)
	for _, e := range errs {
		require.Equal(t, CodeInvalidType, e.Code)
	}
}

func TestCreateProductSchemaValid(t *testing.T) {
	out, errs := CreateProductSchema.Validate(map[string]any{
		"sku":   "LAP001",
		"name":  "Laptop Dell",
		"qty":   float64(10),
		"price": 899.99,
	})
	require.Nil(t, errs)
	require.Equal(t, "LAP001", out["sku"])
	require.Equal(t, 10, out["qty"])
	require.Equal(t, 899.99, out["price"])
}

func TestCreateProductSchemaRejectsLowercaseSKU(t *testing.T) {
	_, errs := CreateProductSchema.Validate(map[string]any{
		"sku":   "lap001",
		"name":  "Laptop",
		"qty":   float64(1),
		"price": 1.0,
	})
	require.Len(t, errs, 1)
	require.Equal(t, "sku", errs[0].Field)
	require.Equal(t, CodeInvalidString, errs[0].Code)
}

func TestCreateProductSchemaNumericBounds(t *testing.T) {
	_, errs := CreateProductSchema.Validate(map[string]any{
		"sku":   "SKU1",
		"name":  "Thing",
		"qty":   float64(1000000),
		"price": -0.01,
	})
	require.Len(t, errs, 2)

	byField := map[string]FieldError{}
	for _, e := range errs {
		byField[e.Field] = e
	}
	require.Equal(t, CodeTooBig, byField["qty"].Code)
	require.Equal(t, CodeTooSmall, byField["price"].Code)
}

func TestCreateProductSchemaNonIntegerQty(t *testing.T) {
	_, errs := CreateProductSchema.Validate(map[string]any{
		"sku":   "SKU1",
		"name":  "Thing",
		"qty":   1.5,
		"price": 1.0,
	})
	require.Len(t, errs, 1)
	require.Equal(t, "qty", errs[0].Field)
	require.Equal(t, CodeInvalidType, errs[0].Code)
}

func TestUpdateProductSchemaAllOptional(t *testing.T) {
	out, errs := UpdateProductSchema.Validate(map[string]any{})
	require.Nil(t, errs)
	require.Empty(t, out)
}

func TestUpdateProductSchemaDropsSKU(t *testing.T) {
	out, errs := UpdateProductSchema.Validate(map[string]any{
		"sku": "NEW001",
		"qty": float64(5),
	})
	require.Nil(t, errs)
	require.NotContains(t, out, "sku")
	require.Equal(t, 5, out["qty"])
}

func TestProductID(t *testing.T) {
	id, fe := ProductID("42")
	require.Nil(t, fe)
	require.Equal(t, 42, id)

	for _, raw := range []string{"", "abc", "1.5", "-1", "1e3"} {
		_, fe := ProductID(raw)
		require.NotNil(t, fe, "expected error for %q", raw)
		require.Equal(t, "id", fe.Field)
	}
}
