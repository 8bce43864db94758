package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jak-krittin/minishop-backend/api/responses"
	"github.com/jak-krittin/minishop-backend/api/validators"
	"github.com/jak-krittin/minishop-backend/internal/products"
	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
	"github.com/jak-krittin/minishop-backend/pkg/logger"
)

// ImageStore persists an uploaded image and returns the stored filename.
type ImageStore interface {
	Save(header *multipart.FileHeader) (string, error)
}

// ProductsDeps bundles what the product handlers need.
type ProductsDeps struct {
	Service  products.Service
	Images   ImageStore
	MaxBytes int64
	Logger   *logger.Logger
}

func (d ProductsDeps) ready() error {
	if d.Service == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable")
	}
	return nil
}

// ListProducts returns the full catalog, newest first.
func ListProducts(deps ProductsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.ready(); err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		result, err := deps.Service.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// GetProduct returns a single product by id.
func GetProduct(deps ProductsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.ready(); err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		id, err := productID(r)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		result, err := deps.Service.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CreateProduct stores a new product from a multipart form, saving the
// uploaded image first when one is present.
func CreateProduct(deps ProductsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.ready(); err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		input, err := decodeProductForm(r, deps)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		result, err := deps.Service.CreateProduct(r.Context(), *input)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// UpdateProduct applies a full-form update. A request without a new image
// leaves the stored filename untouched.
func UpdateProduct(deps ProductsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.ready(); err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		id, err := productID(r)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		input, err := decodeProductForm(r, deps)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		result, err := deps.Service.UpdateProduct(r.Context(), id, *input)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// DeleteProduct removes the row. The stored image file is left on disk.
func DeleteProduct(deps ProductsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.ready(); err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		id, err := productID(r)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		result, err := deps.Service.DeleteProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), deps.Logger, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func productID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id").
			WithDetails(map[string]string{"productId": "must be a positive integer"})
	}
	return id, nil
}

func decodeProductForm(r *http.Request, deps ProductsDeps) (*products.ProductInput, error) {
	maxBytes := deps.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}

	input, err := validators.ProductForm(r)
	if err != nil {
		return nil, err
	}

	if deps.Images != nil && r.MultipartForm != nil {
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			name, err := deps.Images.Save(files[0])
			if err != nil {
				return nil, err
			}
			input.Image = &name
		}
	}

	return input, nil
}
