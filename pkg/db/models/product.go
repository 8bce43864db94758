package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog record. Image holds the generated filename of
// the uploaded file, or NULL when no image was ever attached. CategoryID,
// UserID and StatusID are plain references; no FK cascades are declared.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description;not null"`
	Barcode     string          `gorm:"column:barcode;not null"`
	Image       *string         `gorm:"column:image"`
	Stock       int             `gorm:"column:stock;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	CategoryID  int64           `gorm:"column:category_id;not null"`
	UserID      int64           `gorm:"column:user_id;not null"`
	StatusID    int64           `gorm:"column:status_id;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
