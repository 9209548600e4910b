package usecase

import (
	"context"
	"errors"

	"creator-hub/pkg/apperror"
	"creator-hub/pkg/cache"
	"creator-hub/pkg/logger"
	"creator-hub/pkg/queue"
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/listing"
	"creator-hub/services/catalog/internal/repo/persistent"

	"github.com/go-playground/validator/v10"
)

const (
	MsgCreatorNotFound = "Creator not found"

	creatorsPath = "/api/creators"
	featuredPath = "/api/creators/featured"
)

// EventPublisher is satisfied by *queue.Client.
type EventPublisher interface {
	PublishCatalogEvent(event queue.CatalogEvent) error
}

type CatalogUseCase interface {
	ListCreators(ctx context.Context, q listing.Query) (*listing.View, error)
	GetFeaturedCreators(ctx context.Context) ([]*entity.Creator, error)
	GetCreatorBySlug(ctx context.Context, slug string) (*entity.Creator, error)
	GetCreatorTiers(ctx context.Context, slug string) ([]*entity.Tier, error)
	GetCreatorPosts(ctx context.Context, slug string) ([]*entity.Post, error)
	GetCreatorProducts(ctx context.Context, slug string) ([]*entity.Product, error)
	Categories() []string

	CreateCreator(ctx context.Context, in *entity.NewCreator) (*entity.Creator, error)
	CreateTier(ctx context.Context, in *entity.NewTier) (*entity.Tier, error)
	CreatePost(ctx context.Context, in *entity.NewPost) (*entity.Post, error)
	CreateProduct(ctx context.Context, in *entity.NewProduct) (*entity.Product, error)

	InvalidateCache(ctx context.Context) error
}

type catalogUseCase struct {
	repo      persistent.CatalogRepository
	cache     *cache.QueryCache
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger
}

// NewCatalogUseCase wires the catalog use cases. queryCache and publisher may be nil.
func NewCatalogUseCase(
	repo persistent.CatalogRepository,
	queryCache *cache.QueryCache,
	publisher EventPublisher,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		repo:      repo,
		cache:     queryCache,
		publisher: publisher,
		validate:  newValidator(),
		logger:    logger,
	}
}

// cachedRead serves key from the query cache, falling back to load and storing
// its result under the generation seen before the load. Errors are never cached.
// Cache failures degrade to a direct load.
func cachedRead[T any](ctx context.Context, uc *catalogUseCase, key string, load func() (T, error)) (T, error) {
	gen, err := uc.cache.Generation(ctx)
	if err != nil {
		uc.logger.Warn("[CACHE] %v", err)
		return load()
	}
	key = cache.AtGeneration(key, gen)

	var cached T
	hit, err := uc.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		uc.logger.Warn("[CACHE] %v", err)
	}
	if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := uc.cache.SetJSON(ctx, key, value); err != nil {
		uc.logger.Warn("[CACHE] %v", err)
	}
	return value, nil
}

func (uc *catalogUseCase) ListCreators(ctx context.Context, q listing.Query) (*listing.View, error) {
	all, err := cachedRead(ctx, uc, cache.Key(creatorsPath, nil), func() ([]*entity.Creator, error) {
		creators, err := uc.repo.GetAllCreators()
		if err != nil {
			return nil, apperror.Internal("Failed to fetch creators", err)
		}
		return creators, nil
	})
	if err != nil {
		return nil, err
	}
	return listing.Filter(all, q), nil
}

func (uc *catalogUseCase) GetFeaturedCreators(ctx context.Context) ([]*entity.Creator, error) {
	return cachedRead(ctx, uc, cache.Key(featuredPath, nil), func() ([]*entity.Creator, error) {
		creators, err := uc.repo.GetFeaturedCreators()
		if err != nil {
			return nil, apperror.Internal("Failed to fetch featured creators", err)
		}
		return creators, nil
	})
}

func (uc *catalogUseCase) GetCreatorBySlug(ctx context.Context, slug string) (*entity.Creator, error) {
	return cachedRead(ctx, uc, cache.Key(creatorsPath+"/"+slug, nil), func() (*entity.Creator, error) {
		return uc.resolveCreator(slug, "Failed to fetch creator")
	})
}

func (uc *catalogUseCase) GetCreatorTiers(ctx context.Context, slug string) ([]*entity.Tier, error) {
	return cachedRead(ctx, uc, cache.Key(creatorsPath+"/"+slug+"/tiers", nil), func() ([]*entity.Tier, error) {
		creator, err := uc.resolveCreator(slug, "Failed to fetch tiers")
		if err != nil {
			return nil, err
		}
		tiers, err := uc.repo.GetTiersByCreatorID(creator.ID)
		if err != nil {
			return nil, apperror.Internal("Failed to fetch tiers", err)
		}
		if tiers == nil {
			tiers = []*entity.Tier{}
		}
		return tiers, nil
	})
}

func (uc *catalogUseCase) GetCreatorPosts(ctx context.Context, slug string) ([]*entity.Post, error) {
	return cachedRead(ctx, uc, cache.Key(creatorsPath+"/"+slug+"/posts", nil), func() ([]*entity.Post, error) {
		creator, err := uc.resolveCreator(slug, "Failed to fetch posts")
		if err != nil {
			return nil, err
		}
		posts, err := uc.repo.GetPostsByCreatorID(creator.ID)
		if err != nil {
			return nil, apperror.Internal("Failed to fetch posts", err)
		}
		if posts == nil {
			posts = []*entity.Post{}
		}
		return posts, nil
	})
}

func (uc *catalogUseCase) GetCreatorProducts(ctx context.Context, slug string) ([]*entity.Product, error) {
	return cachedRead(ctx, uc, cache.Key(creatorsPath+"/"+slug+"/products", nil), func() ([]*entity.Product, error) {
		creator, err := uc.resolveCreator(slug, "Failed to fetch products")
		if err != nil {
			return nil, err
		}
		products, err := uc.repo.GetProductsByCreatorID(creator.ID)
		if err != nil {
			return nil, apperror.Internal("Failed to fetch products", err)
		}
		if products == nil {
			products = []*entity.Product{}
		}
		return products, nil
	})
}

func (uc *catalogUseCase) resolveCreator(slug, failure string) (*entity.Creator, error) {
	creator, err := uc.repo.GetCreatorBySlug(slug)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, apperror.NotFound(MsgCreatorNotFound)
	}
	if err != nil {
		return nil, apperror.Internal(failure, err)
	}
	return creator, nil
}

// Categories lists the explore page filter options, CategoryAll first.
func (uc *catalogUseCase) Categories() []string {
	out := make([]string, 0, len(entity.CreatorCategories)+1)
	out = append(out, entity.CategoryAll)
	for _, c := range entity.CreatorCategories {
		out = append(out, string(c))
	}
	return out
}

func (uc *catalogUseCase) CreateCreator(ctx context.Context, in *entity.NewCreator) (*entity.Creator, error) {
	if in == nil {
		return nil, apperror.Validation("invalid creator", nil)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError("invalid creator", err)
	}

	_, err := uc.repo.GetCreatorBySlug(in.Slug)
	if err == nil {
		return nil, apperror.Conflict("Creator slug already exists")
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		return nil, apperror.Internal("Failed to create creator", err)
	}

	creator := *in
	if creator.SocialLinks.IsEmpty() {
		creator.SocialLinks = nil
	}

	created, err := uc.repo.CreateCreator(&creator)
	if errors.Is(err, persistent.ErrDuplicate) {
		return nil, apperror.Conflict("Creator slug already exists")
	}
	if err != nil {
		return nil, apperror.Internal("Failed to create creator", err)
	}

	uc.logger.Info("Creator created: %s (%s)", created.Slug, created.ID)
	uc.afterWrite(ctx, queue.NewCatalogEvent("creator", created.ID, created.Slug))
	return created, nil
}

func (uc *catalogUseCase) CreateTier(ctx context.Context, in *entity.NewTier) (*entity.Tier, error) {
	if in == nil {
		return nil, apperror.Validation("invalid tier", nil)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError("invalid tier", err)
	}

	parent, err := uc.parentCreator(in.CreatorID, "invalid tier", "Failed to create tier")
	if err != nil {
		return nil, err
	}

	tier := *in
	tier.Benefits = append([]string{}, in.Benefits...)

	created, err := uc.repo.CreateTier(&tier)
	if err != nil {
		return nil, uc.writeError(err, "Failed to create tier")
	}

	uc.afterWrite(ctx, queue.NewCatalogEvent("tier", created.ID, parent.Slug))
	return created, nil
}

func (uc *catalogUseCase) CreatePost(ctx context.Context, in *entity.NewPost) (*entity.Post, error) {
	if in == nil {
		return nil, apperror.Validation("invalid post", nil)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError("invalid post", err)
	}
	if !in.IsPublic && in.MinTierPrice == nil {
		return nil, apperror.Validation("invalid post: minTierPrice is required for patron-only posts", nil)
	}

	parent, err := uc.parentCreator(in.CreatorID, "invalid post", "Failed to create post")
	if err != nil {
		return nil, err
	}

	post := *in
	if post.IsPublic {
		post.MinTierPrice = nil
	}

	created, err := uc.repo.CreatePost(&post)
	if err != nil {
		return nil, uc.writeError(err, "Failed to create post")
	}

	uc.afterWrite(ctx, queue.NewCatalogEvent("post", created.ID, parent.Slug))
	return created, nil
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, in *entity.NewProduct) (*entity.Product, error) {
	if in == nil {
		return nil, apperror.Validation("invalid product", nil)
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError("invalid product", err)
	}

	parent, err := uc.parentCreator(in.CreatorID, "invalid product", "Failed to create product")
	if err != nil {
		return nil, err
	}

	product := *in
	created, err := uc.repo.CreateProduct(&product)
	if err != nil {
		return nil, uc.writeError(err, "Failed to create product")
	}

	uc.afterWrite(ctx, queue.NewCatalogEvent("product", created.ID, parent.Slug))
	return created, nil
}

// parentCreator reports a dangling creatorId as a validation failure of the child.
func (uc *catalogUseCase) parentCreator(creatorID, subject, failure string) (*entity.Creator, error) {
	parent, err := uc.repo.GetCreatorByID(creatorID)
	if errors.Is(err, persistent.ErrNotFound) {
		return nil, apperror.Validation(subject+": creatorId references no creator", err)
	}
	if err != nil {
		return nil, apperror.Internal(failure, err)
	}
	return parent, nil
}

func (uc *catalogUseCase) writeError(err error, failure string) error {
	if errors.Is(err, persistent.ErrDuplicate) {
		return apperror.Conflict("Record already exists")
	}
	return apperror.Internal(failure, err)
}

// afterWrite drops cached reads and announces the change. Neither step fails the write.
func (uc *catalogUseCase) afterWrite(ctx context.Context, event queue.CatalogEvent) {
	if err := uc.InvalidateCache(ctx); err != nil {
		uc.logger.Warn("[CACHE] invalidate after %s write: %v", event.Entity, err)
	}
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishCatalogEvent(event); err != nil {
		uc.logger.Warn("Failed to publish %s event for %s: %v", event.Entity, event.ID, err)
	}
}

func (uc *catalogUseCase) InvalidateCache(ctx context.Context) error {
	n, err := uc.cache.Invalidate(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		uc.logger.Debug("[CACHE] invalidated %d entries", n)
	}
	return nil
}
