package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreatorModel struct {
	ID          string       `gorm:"type:uuid;primary_key" json:"id"`
	Slug        string       `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	Tagline     string       `gorm:"type:text;not null" json:"tagline"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Category    string       `gorm:"type:text;not null;index" json:"category"`
	AvatarURL   string       `gorm:"type:text;not null" json:"avatar_url"`
	CoverURL    *string      `gorm:"type:text" json:"cover_url"`
	PatronCount int          `gorm:"not null;default:0" json:"patron_count"`
	PostCount   int          `gorm:"not null;default:0" json:"post_count"`
	IsVerified  bool         `gorm:"not null;default:false;index" json:"is_verified"`
	SocialLinks *SocialLinks `gorm:"type:jsonb" json:"social_links"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
}

func (CreatorModel) TableName() string {
	return "creators"
}

func (c *CreatorModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// SocialLinks is the jsonb column shape. Keys outside the four known kinds are
// dropped when a row is scanned.
type SocialLinks struct {
	Twitter   *string `json:"twitter,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Website   *string `json:"website,omitempty"`
}

func (s SocialLinks) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *SocialLinks) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = SocialLinks{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("social_links: unsupported scan type %T", src)
	}
	var links SocialLinks
	if err := json.Unmarshal(raw, &links); err != nil {
		return fmt.Errorf("social_links: %w", err)
	}
	*s = links
	return nil
}
