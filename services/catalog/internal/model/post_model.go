package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID    string    `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	ImageURL     *string   `gorm:"type:text" json:"image_url"`
	IsPublic     bool      `gorm:"not null" json:"is_public"`
	MinTierPrice *int      `json:"min_tier_price"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
