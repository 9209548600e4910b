package persistent

import (
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/model"

	"github.com/lib/pq"
)

func ToCreatorEntity(m *model.CreatorModel) *entity.Creator {
	if m == nil {
		return nil
	}

	return &entity.Creator{
		ID:          m.ID,
		Slug:        m.Slug,
		Name:        m.Name,
		Tagline:     m.Tagline,
		Description: m.Description,
		Category:    entity.CreatorCategory(m.Category),
		AvatarURL:   m.AvatarURL,
		CoverURL:    m.CoverURL,
		PatronCount: m.PatronCount,
		PostCount:   m.PostCount,
		IsVerified:  m.IsVerified,
		SocialLinks: toSocialLinksEntity(m.SocialLinks),
		CreatedAt:   m.CreatedAt,
	}
}

func ToCreatorModel(e *entity.NewCreator) *model.CreatorModel {
	if e == nil {
		return nil
	}

	return &model.CreatorModel{
		Slug:        e.Slug,
		Name:        e.Name,
		Tagline:     e.Tagline,
		Description: e.Description,
		Category:    string(e.Category),
		AvatarURL:   e.AvatarURL,
		CoverURL:    e.CoverURL,
		PatronCount: e.PatronCount,
		PostCount:   e.PostCount,
		IsVerified:  e.IsVerified,
		SocialLinks: toSocialLinksModel(e.SocialLinks),
	}
}

func toSocialLinksEntity(m *model.SocialLinks) *entity.SocialLinks {
	if m == nil {
		return nil
	}
	links := &entity.SocialLinks{
		Twitter:   m.Twitter,
		YouTube:   m.YouTube,
		Instagram: m.Instagram,
		Website:   m.Website,
	}
	if links.IsEmpty() {
		return nil
	}
	return links
}

func toSocialLinksModel(e *entity.SocialLinks) *model.SocialLinks {
	if e.IsEmpty() {
		return nil
	}
	return &model.SocialLinks{
		Twitter:   e.Twitter,
		YouTube:   e.YouTube,
		Instagram: e.Instagram,
		Website:   e.Website,
	}
}

func ToTierEntity(m *model.TierModel) *entity.Tier {
	if m == nil {
		return nil
	}

	benefits := make([]string, len(m.Benefits))
	copy(benefits, m.Benefits)

	return &entity.Tier{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Benefits:    benefits,
		IsPopular:   m.IsPopular,
	}
}

func ToTierModel(e *entity.NewTier) *model.TierModel {
	if e == nil {
		return nil
	}

	benefits := make(pq.StringArray, len(e.Benefits))
	copy(benefits, e.Benefits)

	return &model.TierModel{
		CreatorID:   e.CreatorID,
		Name:        e.Name,
		Price:       e.Price,
		Description: e.Description,
		Benefits:    benefits,
		IsPopular:   e.IsPopular,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:           m.ID,
		CreatorID:    m.CreatorID,
		Title:        m.Title,
		Content:      m.Content,
		ImageURL:     m.ImageURL,
		IsPublic:     m.IsPublic,
		MinTierPrice: m.MinTierPrice,
		LikeCount:    m.LikeCount,
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
	}
}

func ToPostModel(e *entity.NewPost) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		CreatorID:    e.CreatorID,
		Title:        e.Title,
		Content:      e.Content,
		ImageURL:     e.ImageURL,
		IsPublic:     e.IsPublic,
		MinTierPrice: e.MinTierPrice,
		LikeCount:    e.LikeCount,
		CommentCount: e.CommentCount,
	}
}

func ToProductEntity(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		ImageURL:    m.ImageURL,
		Category:    entity.ProductCategory(m.Category),
		IsFeatured:  m.IsFeatured,
		SalesCount:  m.SalesCount,
		CreatedAt:   m.CreatedAt,
	}
}

func ToProductModel(e *entity.NewProduct) *model.ProductModel {
	if e == nil {
		return nil
	}

	return &model.ProductModel{
		CreatorID:   e.CreatorID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
		Category:    string(e.Category),
		IsFeatured:  e.IsFeatured,
		SalesCount:  e.SalesCount,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:       m.ID,
		Username: m.Username,
		Password: m.Password,
	}
}
