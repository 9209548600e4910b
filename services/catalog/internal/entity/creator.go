package entity

import "time"

type Creator struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Tagline     string          `json:"tagline"`
	Description string          `json:"description"`
	Category    CreatorCategory `json:"category"`
	AvatarURL   string          `json:"avatarUrl"`
	CoverURL    *string         `json:"coverUrl"`
	PatronCount int             `json:"patronCount"`
	PostCount   int             `json:"postCount"`
	IsVerified  bool            `json:"isVerified"`
	SocialLinks *SocialLinks    `json:"socialLinks"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SocialLinks holds the recognised link kinds. Every key is optional.
type SocialLinks struct {
	Twitter   *string `json:"twitter,omitempty" validate:"omitempty,url"`
	YouTube   *string `json:"youtube,omitempty" validate:"omitempty,url"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,url"`
	Website   *string `json:"website,omitempty" validate:"omitempty,url"`
}

func (s *SocialLinks) IsEmpty() bool {
	return s == nil || (s.Twitter == nil && s.YouTube == nil && s.Instagram == nil && s.Website == nil)
}

// NewCreator is the insert shape for a creator. ID and CreatedAt are assigned by the store.
type NewCreator struct {
	Slug        string          `json:"slug" validate:"required,max=100,slug"`
	Name        string          `json:"name" validate:"required,max=200"`
	Tagline     string          `json:"tagline" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    CreatorCategory `json:"category" validate:"required,creator_category"`
	AvatarURL   string          `json:"avatarUrl" validate:"required"`
	CoverURL    *string         `json:"coverUrl"`
	PatronCount int             `json:"patronCount" validate:"gte=0"`
	PostCount   int             `json:"postCount" validate:"gte=0"`
	IsVerified  bool            `json:"isVerified"`
	SocialLinks *SocialLinks    `json:"socialLinks"`
}
