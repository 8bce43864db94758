package products

import (
	"context"

	"github.com/jak-krittin/minishop-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository wires together product persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every product, most recent id first.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads the product by primary key.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product row and backfills the assigned id.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update rewrites the row's fields. The image column is only touched when
// includeImage is set; otherwise the stored filename survives the update.
func (r *Repository) Update(ctx context.Context, id int64, product *models.Product, includeImage bool) error {
	columns := map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"barcode":     product.Barcode,
		"stock":       product.Stock,
		"price":       product.Price,
		"category_id": product.CategoryID,
		"user_id":     product.UserID,
		"status_id":   product.StatusID,
	}
	if includeImage {
		columns["image"] = product.Image
	}
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(columns).Error
}

// Delete removes a product by id. Deleting a missing row is not an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}
