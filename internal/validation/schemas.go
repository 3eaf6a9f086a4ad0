package validation

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	skuPattern      = regexp.MustCompile(`^[A-Z0-9]+$`)
	idPattern       = regexp.MustCompile(`^\d+$`)
)

var LoginSchema = Schema{Fields: []Field{
	{
		Name:           "username",
		Kind:           KindString,
		MinLen:         1,
		MaxLen:         50,
		Pattern:        usernamePattern,
		PatternMessage: "username may only contain letters, numbers and underscores",
	},
	{
		Name:   "password",
		Kind:   KindString,
		MinLen: 6,
		MaxLen: 100,
	},
}}

var CreateProductSchema = Schema{Fields: []Field{
	{
		Name:           "sku",
		Kind:           KindString,
		MinLen:         1,
		MaxLen:         20,
		Pattern:        skuPattern,
		PatternMessage: "sku may only contain uppercase letters and numbers",
	},
	{Name: "name", Kind: KindString, MinLen: 1, MaxLen: 100},
	{Name: "qty", Kind: KindInt, Min: 0, Max: 999999},
	{Name: "price", Kind: KindNumber, Min: 0, Max: 999999.99},
}}

// UpdateProductSchema repeats the create rules with every field optional.
// The sku is deliberately absent: it is immutable after creation. Whether at
// least one field was supplied is the handler's concern, not the schema's.
var UpdateProductSchema = Schema{Fields: []Field{
	{Name: "name", Kind: KindString, Optional: true, MinLen: 1, MaxLen: 100},
	{Name: "qty", Kind: KindInt, Optional: true, Min: 0, Max: 999999},
	{Name: "price", Kind: KindNumber, Optional: true, Min: 0, Max: 999999.99},
}}

// ProductID validates a path id parameter and coerces it to an int.
func ProductID(raw string) (int, *FieldError) {
	if !idPattern.MatchString(raw) {
		return 0, &FieldError{
			Field:   "id",
			Message: "id must be a valid number",
			Code:    CodeInvalidString,
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{
			Field:   "id",
			Message: fmt.Sprintf("id %q is out of range", raw),
			Code:    CodeInvalidString,
		}
	}
	return id, nil
}
