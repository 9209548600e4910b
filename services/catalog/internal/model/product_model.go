package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID   string    `gorm:"type:uuid;not null;index" json:"creator_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	ImageURL    *string   `gorm:"type:text" json:"image_url"`
	Category    string    `gorm:"type:text;not null" json:"category"`
	IsFeatured  bool      `gorm:"not null;default:false" json:"is_featured"`
	SalesCount  int       `gorm:"not null;default:0" json:"sales_count"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
