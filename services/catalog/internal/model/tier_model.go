package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TierModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID   string         `gorm:"type:uuid;not null;index" json:"creator_id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Price       int            `gorm:"not null" json:"price"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Benefits    pq.StringArray `gorm:"type:text[];not null" json:"benefits"`
	IsPopular   bool           `gorm:"not null;default:false" json:"is_popular"`
}

func (TierModel) TableName() string {
	return "tiers"
}

func (t *TierModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Benefits == nil {
		t.Benefits = pq.StringArray{}
	}
	return nil
}
