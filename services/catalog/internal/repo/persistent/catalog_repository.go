package persistent

import (
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository is the only read/write path to creators and the tiers,
// posts and products they own. Every call reads the store; nothing is cached here.
// Lookups by key return ErrNotFound on a miss. Child listings return an empty
// slice when the parent has no children or does not exist.
type CatalogRepository interface {
	GetCreatorByID(id string) (*entity.Creator, error)
	GetCreatorBySlug(slug string) (*entity.Creator, error)
	GetAllCreators() ([]*entity.Creator, error)
	GetFeaturedCreators() ([]*entity.Creator, error)
	CreateCreator(creator *entity.NewCreator) (*entity.Creator, error)

	GetTiersByCreatorID(creatorID string) ([]*entity.Tier, error)
	CreateTier(tier *entity.NewTier) (*entity.Tier, error)

	GetPostsByCreatorID(creatorID string) ([]*entity.Post, error)
	CreatePost(post *entity.NewPost) (*entity.Post, error)

	GetProductsByCreatorID(creatorID string) ([]*entity.Product, error)
	CreateProduct(product *entity.NewProduct) (*entity.Product, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

const creatorOrder = "patron_count DESC, created_at ASC"

func (r *catalogRepository) GetCreatorByID(id string) (*entity.Creator, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var creatorModel model.CreatorModel
	if err := r.db.Where("id = ?", id).First(&creatorModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCreatorEntity(&creatorModel), nil
}

func (r *catalogRepository) GetCreatorBySlug(slug string) (*entity.Creator, error) {
	var creatorModel model.CreatorModel
	if err := r.db.Where("slug = ?", slug).First(&creatorModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCreatorEntity(&creatorModel), nil
}

func (r *catalogRepository) GetAllCreators() ([]*entity.Creator, error) {
	var creatorModels []model.CreatorModel
	if err := r.db.Order(creatorOrder).Find(&creatorModels).Error; err != nil {
		return nil, err
	}
	return toCreatorEntities(creatorModels), nil
}

// GetFeaturedCreators returns the verified creators. There is no separate featured flag.
func (r *catalogRepository) GetFeaturedCreators() ([]*entity.Creator, error) {
	var creatorModels []model.CreatorModel
	if err := r.db.Where("is_verified = ?", true).Order(creatorOrder).Find(&creatorModels).Error; err != nil {
		return nil, err
	}
	return toCreatorEntities(creatorModels), nil
}

func (r *catalogRepository) CreateCreator(creator *entity.NewCreator) (*entity.Creator, error) {
	creatorModel := ToCreatorModel(creator)
	if err := r.db.Create(creatorModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToCreatorEntity(creatorModel), nil
}

func (r *catalogRepository) GetTiersByCreatorID(creatorID string) ([]*entity.Tier, error) {
	if !validID(creatorID) {
		return []*entity.Tier{}, nil
	}
	var tierModels []model.TierModel
	if err := r.db.Where("creator_id = ?", creatorID).Order("price ASC").Find(&tierModels).Error; err != nil {
		return nil, err
	}

	tiers := make([]*entity.Tier, len(tierModels))
	for i := range tierModels {
		tiers[i] = ToTierEntity(&tierModels[i])
	}
	return tiers, nil
}

func (r *catalogRepository) CreateTier(tier *entity.NewTier) (*entity.Tier, error) {
	tierModel := ToTierModel(tier)
	if err := r.db.Create(tierModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToTierEntity(tierModel), nil
}

func (r *catalogRepository) GetPostsByCreatorID(creatorID string) ([]*entity.Post, error) {
	if !validID(creatorID) {
		return []*entity.Post{}, nil
	}
	var postModels []model.PostModel
	if err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *catalogRepository) CreatePost(post *entity.NewPost) (*entity.Post, error) {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(postModel), nil
}

func (r *catalogRepository) GetProductsByCreatorID(creatorID string) ([]*entity.Product, error) {
	if !validID(creatorID) {
		return []*entity.Product{}, nil
	}
	var productModels []model.ProductModel
	if err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = ToProductEntity(&productModels[i])
	}
	return products, nil
}

func (r *catalogRepository) CreateProduct(product *entity.NewProduct) (*entity.Product, error) {
	productModel := ToProductModel(product)
	if err := r.db.Create(productModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToProductEntity(productModel), nil
}

func toCreatorEntities(creatorModels []model.CreatorModel) []*entity.Creator {
	creators := make([]*entity.Creator, len(creatorModels))
	for i := range creatorModels {
		creators[i] = ToCreatorEntity(&creatorModels[i])
	}
	return creators
}
