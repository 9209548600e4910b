package entity

type CreatorCategory string

const (
	CategoryArt         CreatorCategory = "Art & Illustration"
	CategoryMusic       CreatorCategory = "Music"
	CategoryPodcasts    CreatorCategory = "Podcasts"
	CategoryGaming      CreatorCategory = "Gaming"
	CategoryWriting     CreatorCategory = "Writing"
	CategoryVideo       CreatorCategory = "Video"
	CategoryEducation   CreatorCategory = "Education"
	CategoryPhotography CreatorCategory = "Photography"
)

// CategoryAll selects every creator in a listing. It is never stored.
const CategoryAll = "All"

// CreatorCategories is the controlled vocabulary in display order.
var CreatorCategories = []CreatorCategory{
	CategoryArt,
	CategoryMusic,
	CategoryPodcasts,
	CategoryGaming,
	CategoryWriting,
	CategoryVideo,
	CategoryEducation,
	CategoryPhotography,
}

func (c CreatorCategory) Valid() bool {
	for _, known := range CreatorCategories {
		if c == known {
			return true
		}
	}
	return false
}

type ProductCategory string

const (
	ProductDigital  ProductCategory = "digital"
	ProductPhysical ProductCategory = "physical"
	ProductService  ProductCategory = "service"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case ProductDigital, ProductPhysical, ProductService:
		return true
	}
	return false
}
