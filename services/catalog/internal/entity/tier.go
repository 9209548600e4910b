package entity

type Tier struct {
	ID          string   `json:"id"`
	CreatorID   string   `json:"creatorId"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	IsPopular   bool     `json:"isPopular"`
}

// NewTier is the insert shape for a tier. Price is in whole dollars per month
// and Benefits keeps its display order.
type NewTier struct {
	CreatorID   string   `json:"creatorId" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required,max=100"`
	Price       int      `json:"price" validate:"gt=0"`
	Description string   `json:"description" validate:"required"`
	Benefits    []string `json:"benefits" validate:"dive,required"`
	IsPopular   bool     `json:"isPopular"`
}
