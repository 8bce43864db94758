package products

import (
	"context"
	"fmt"

	"github.com/jak-krittin/minishop-backend/pkg/db"
	"github.com/jak-krittin/minishop-backend/pkg/db/models"
	pkgerrors "github.com/jak-krittin/minishop-backend/pkg/errors"
	"github.com/jak-krittin/minishop-backend/pkg/types"
)

const (
	createdMessage = "Product created successfully"
	updatedMessage = "Product updated successfully"
	deletedMessage = "Product deleted successfully"
)

// Service exposes the product catalog operations.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id int64) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input ProductInput) (*MutationResponse, error)
	UpdateProduct(ctx context.Context, id int64, input ProductInput) (*MutationResponse, error)
	DeleteProduct(ctx context.Context, id int64) (*MutationResponse, error)
}

type repository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id int64, product *models.Product, includeImage bool) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository
}

// NewService constructs a product service instance.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return FromModels(rows), nil
}

func (s *service) GetProduct(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return FromModel(product), nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*MutationResponse, error) {
	product, err := s.repo.Create(ctx, input.toModel())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return &MutationResponse{
		Status:  types.StatusOK,
		Message: createdMessage,
		Product: FromModel(product),
	}, nil
}

// UpdateProduct rewrites the row. When input.Image is nil the statement omits
// the image column, so a previously stored filename is preserved. The old
// file on disk is never deleted; a replacement only supersedes the reference.
func (s *service) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*MutationResponse, error) {
	includeImage := input.Image != nil
	if err := s.repo.Update(ctx, id, input.toModel(), includeImage); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}

	return &MutationResponse{
		Status:  types.StatusOK,
		Message: updatedMessage,
		Product: FromModel(product),
	}, nil
}

// DeleteProduct removes the row by id. There is no existence check: deleting
// an id that was never there still reports success. The uploaded image file
// (if any) stays on disk.
func (s *service) DeleteProduct(ctx context.Context, id int64) (*MutationResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return &MutationResponse{
		Status:  types.StatusOK,
		Message: deletedMessage,
		Product: DeletedProduct{ID: id},
	}, nil
}
