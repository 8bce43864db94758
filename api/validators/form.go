package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jak-krittin/minishop-backend/internal/products"
	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
)

// ProductForm decodes the multipart fields of a product create/update request.
// The image part is handled by the caller; only scalar fields live here.
func ProductForm(r *http.Request) (*products.ProductInput, error) {
	details := map[string]string{}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		details["name"] = "is required"
	}
	description := strings.TrimSpace(r.FormValue("description"))
	if description == "" {
		details["description"] = "is required"
	}
	barcode := strings.TrimSpace(r.FormValue("barcode"))
	if barcode == "" {
		details["barcode"] = "is required"
	}

	stock := formInt(r, "stock", details)
	if stock < 0 {
		details["stock"] = "must be 0 or greater"
	}

	price := formDecimal(r, "price", details)
	if price.IsNegative() {
		details["price"] = "must be 0 or greater"
	}

	categoryID := formInt64(r, "category_id", details)
	userID := formInt64(r, "user_id", details)
	statusID := formInt64(r, "status_id", details)

	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	return &products.ProductInput{
		Name:        name,
		Description: description,
		Barcode:     barcode,
		Stock:       stock,
		Price:       price,
		CategoryID:  categoryID,
		UserID:      userID,
		StatusID:    statusID,
	}, nil
}

func formInt(r *http.Request, field string, details map[string]string) int {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		details[field] = "is required"
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		details[field] = "must be an integer"
		return 0
	}
	return value
}

func formInt64(r *http.Request, field string, details map[string]string) int64 {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		details[field] = "is required"
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		details[field] = "must be an integer"
		return 0
	}
	return value
}

func formDecimal(r *http.Request, field string, details map[string]string) decimal.Decimal {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		details[field] = "is required"
		return decimal.Zero
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		details[field] = "must be a number"
		return decimal.Zero
	}
	return value
}
