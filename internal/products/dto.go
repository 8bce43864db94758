package products

import (
	"time"

	"github.com/jak-krittin/minishop-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the product payload returned to clients.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Barcode     string          `json:"barcode"`
	Image       *string         `json:"image"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	UserID      int64           `json:"user_id"`
	StatusID    int64           `json:"status_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductInput holds the validated multipart form fields. Image carries the
// stored filename when a new file was uploaded, nil otherwise.
type ProductInput struct {
	Name        string
	Description string
	Barcode     string
	Stock       int
	Price       decimal.Decimal
	CategoryID  int64
	UserID      int64
	StatusID    int64
	Image       *string
}

// MutationResponse wraps create/update/delete results.
type MutationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Product any    `json:"product"`
}

// DeletedProduct is the minimal echo returned after a delete.
type DeletedProduct struct {
	ID int64 `json:"id"`
}

func (i ProductInput) toModel() *models.Product {
	return &models.Product{
		Name:        i.Name,
		Description: i.Description,
		Barcode:     i.Barcode,
		Image:       i.Image,
		Stock:       i.Stock,
		Price:       i.Price,
		CategoryID:  i.CategoryID,
		UserID:      i.UserID,
		StatusID:    i.StatusID,
	}
}

// FromModel maps a persisted row into the transport shape.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Barcode:     p.Barcode,
		Image:       p.Image,
		Stock:       p.Stock,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		UserID:      p.UserID,
		StatusID:    p.StatusID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromModels maps a result set, preserving its order.
func FromModels(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, len(rows))
	for i := range rows {
		out[i] = *FromModel(&rows[i])
	}
	return out
}
