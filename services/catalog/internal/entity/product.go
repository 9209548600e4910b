package entity

import (
	"fmt"
	"time"
)

type Product struct {
	ID          string          `json:"id"`
	CreatorID   string          `json:"creatorId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	ImageURL    *string         `json:"imageUrl"`
	Category    ProductCategory `json:"category"`
	IsFeatured  bool            `json:"isFeatured"`
	SalesCount  int             `json:"salesCount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// DisplayPrice formats Price (cents) as "$12" for whole dollars and "$12.99" otherwise.
func (p *Product) DisplayPrice() string {
	if p.Price%100 == 0 {
		return fmt.Sprintf("$%d", p.Price/100)
	}
	return fmt.Sprintf("$%d.%02d", p.Price/100, p.Price%100)
}

type NewProduct struct {
	CreatorID   string          `json:"creatorId" validate:"required,uuid"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required"`
	Price       int             `json:"price" validate:"gt=0"`
	ImageURL    *string         `json:"imageUrl"`
	Category    ProductCategory `json:"category" validate:"required,product_category"`
	IsFeatured  bool            `json:"isFeatured"`
	SalesCount  int             `json:"salesCount" validate:"gte=0"`
}
