package entity

import "time"

type Post struct {
	ID           string    `json:"id"`
	CreatorID    string    `json:"creatorId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     *string   `json:"imageUrl"`
	IsPublic     bool      `json:"isPublic"`
	MinTierPrice *int      `json:"minTierPrice"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RequiredTierPrice is the monthly tier price that unlocks the post, 0 for public posts.
func (p *Post) RequiredTierPrice() int {
	if p.IsPublic || p.MinTierPrice == nil {
		return 0
	}
	return *p.MinTierPrice
}

// NewPost is the insert shape for a post. MinTierPrice is required when the
// post is not public and discarded when it is.
type NewPost struct {
	CreatorID    string  `json:"creatorId" validate:"required,uuid"`
	Title        string  `json:"title" validate:"required,max=300"`
	Content      string  `json:"content" validate:"required"`
	ImageURL     *string `json:"imageUrl"`
	IsPublic     bool    `json:"isPublic"`
	MinTierPrice *int    `json:"minTierPrice" validate:"omitempty,gt=0"`
	LikeCount    int     `json:"likeCount" validate:"gte=0"`
	CommentCount int     `json:"commentCount" validate:"gte=0"`
}
