package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"creator-hub/pkg/apperror"
	"creator-hub/pkg/cache"
	"creator-hub/pkg/logger"
	"creator-hub/pkg/queue"
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/listing"
	"creator-hub/services/catalog/internal/repo/persistent"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishCatalogEvent(event queue.CatalogEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard)
}

func newCreatorInput(slug, name string, category entity.CreatorCategory) *entity.NewCreator {
	return &entity.NewCreator{
		Slug:        slug,
		Name:        name,
		Tagline:     name + " makes things",
		Description: "About " + name,
		Category:    category,
		AvatarURL:   "/images/" + slug + ".png",
	}
}

func setupUseCase(t *testing.T) (*fakeCatalogRepo, CatalogUseCase) {
	t.Helper()
	repo := newFakeCatalogRepo()
	return repo, NewCatalogUseCase(repo, nil, nil, testLogger())
}

func setupCachedUseCase(t *testing.T) (*fakeCatalogRepo, CatalogUseCase, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := newFakeCatalogRepo()
	uc := NewCatalogUseCase(repo, cache.NewQueryCache(client, time.Minute), nil, testLogger())
	return repo, uc, mr
}

func mustCreateCreator(t *testing.T, uc CatalogUseCase, in *entity.NewCreator) *entity.Creator {
	t.Helper()
	created, err := uc.CreateCreator(context.Background(), in)
	require.NoError(t, err)
	return created
}

func TestListCreators_FiltersBySearchAndCategory(t *testing.T) {
	_, uc := setupUseCase(t)
	ctx := context.Background()

	mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))
	mustCreateCreator(t, uc, newCreatorInput("beat-master", "Beat Master", entity.CategoryMusic))
	mustCreateCreator(t, uc, newCreatorInput("pixel-quest", "Pixel Quest", entity.CategoryGaming))

	view, err := uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, "3 creators found", view.Label)

	view, err = uc.ListCreators(ctx, listing.Query{Search: "BEAT"})
	require.NoError(t, err)
	require.Len(t, view.Creators, 1)
	assert.Equal(t, "beat-master", view.Creators[0].Slug)
	assert.Equal(t, "1 creator found", view.Label)

	view, err = uc.ListCreators(ctx, listing.Query{Search: "beat", Category: string(entity.CategoryGaming)})
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Equal(t, "0 creators found", view.Label)
}

func TestListCreators_RepositoryFailure(t *testing.T) {
	repo, uc := setupUseCase(t)
	repo.readErr = errors.New("connection refused")

	_, err := uc.ListCreators(context.Background(), listing.Query{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Equal(t, "Failed to fetch creators", apperror.MessageOf(err, "Failed to fetch creators"))
}

func TestGetFeaturedCreators_OnlyVerified(t *testing.T) {
	_, uc := setupUseCase(t)

	verified := newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt)
	verified.IsVerified = true
	mustCreateCreator(t, uc, verified)
	mustCreateCreator(t, uc, newCreatorInput("beat-master", "Beat Master", entity.CategoryMusic))

	featured, err := uc.GetFeaturedCreators(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "luna-artistry", featured[0].Slug)
}

func TestGetCreatorBySlug(t *testing.T) {
	_, uc := setupUseCase(t)
	ctx := context.Background()
	created := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	found, err := uc.GetCreatorBySlug(ctx, "luna-artistry")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = uc.GetCreatorBySlug(ctx, "nobody")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, MsgCreatorNotFound, apperror.MessageOf(err, ""))
}

func TestChildListings_UnknownSlugIsNotFound(t *testing.T) {
	_, uc := setupUseCase(t)
	ctx := context.Background()

	_, err := uc.GetCreatorTiers(ctx, "nobody")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = uc.GetCreatorPosts(ctx, "nobody")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = uc.GetCreatorProducts(ctx, "nobody")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestChildListings_EmptyAndOwned(t *testing.T) {
	_, uc := setupUseCase(t)
	ctx := context.Background()
	luna := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))
	beat := mustCreateCreator(t, uc, newCreatorInput("beat-master", "Beat Master", entity.CategoryMusic))

	tiers, err := uc.GetCreatorTiers(ctx, "luna-artistry")
	require.NoError(t, err)
	assert.NotNil(t, tiers)
	assert.Empty(t, tiers)

	_, err = uc.CreateTier(ctx, &entity.NewTier{
		CreatorID:   luna.ID,
		Name:        "Supporter",
		Price:       3,
		Description: "Show your support",
		Benefits:    []string{"Early access"},
	})
	require.NoError(t, err)
	_, err = uc.CreateTier(ctx, &entity.NewTier{
		CreatorID:   beat.ID,
		Name:        "VIP",
		Price:       25,
		Description: "Everything",
	})
	require.NoError(t, err)

	tiers, err = uc.GetCreatorTiers(ctx, "luna-artistry")
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, luna.ID, tiers[0].CreatorID)
	assert.Equal(t, []string{"Early access"}, tiers[0].Benefits)

	products, err := uc.GetCreatorProducts(ctx, "beat-master")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCreateCreator_Validation(t *testing.T) {
	_, uc := setupUseCase(t)

	in := newCreatorInput("Bad Slug", "Bad", entity.CreatorCategory("Cooking"))
	_, err := uc.CreateCreator(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "slug failed on slug")
	assert.Contains(t, err.Error(), "category failed on creator_category")

	_, err = uc.CreateCreator(context.Background(), nil)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreateCreator_SocialLinksValidated(t *testing.T) {
	_, uc := setupUseCase(t)

	bad := "not a url"
	in := newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt)
	in.SocialLinks = &entity.SocialLinks{Twitter: &bad}

	_, err := uc.CreateCreator(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "socialLinks.twitter failed on url")
}

func TestCreateCreator_EmptySocialLinksStoredAsNil(t *testing.T) {
	_, uc := setupUseCase(t)

	in := newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt)
	in.SocialLinks = &entity.SocialLinks{}

	created := mustCreateCreator(t, uc, in)
	assert.Nil(t, created.SocialLinks)
	assert.NotNil(t, in.SocialLinks)
}

func TestCreateCreator_DuplicateSlug(t *testing.T) {
	repo, uc := setupUseCase(t)
	ctx := context.Background()
	mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	_, err := uc.CreateCreator(ctx, newCreatorInput("luna-artistry", "Another Luna", entity.CategoryArt))
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	all, err := repo.GetAllCreators()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateCreator_StoreReportsDuplicate(t *testing.T) {
	repo, uc := setupUseCase(t)
	repo.createErr = persistent.ErrDuplicate

	_, err := uc.CreateCreator(context.Background(), newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCreateTier_UnknownCreator(t *testing.T) {
	_, uc := setupUseCase(t)

	_, err := uc.CreateTier(context.Background(), &entity.NewTier{
		CreatorID:   uuid.NewString(),
		Name:        "Supporter",
		Price:       3,
		Description: "Show your support",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreateChildren_MalformedCreatorIDNeverReachesStore(t *testing.T) {
	repo, uc := setupUseCase(t)
	ctx := context.Background()
	price := 10

	_, err := uc.CreateTier(ctx, &entity.NewTier{
		CreatorID:   "not-a-uuid",
		Name:        "Supporter",
		Price:       3,
		Description: "Show your support",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "creatorId failed on uuid")

	_, err = uc.CreatePost(ctx, &entity.NewPost{
		CreatorID:    "not-a-uuid",
		Title:        "Workshop",
		Content:      "Members only",
		MinTierPrice: &price,
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = uc.CreateProduct(ctx, &entity.NewProduct{
		CreatorID:   "not-a-uuid",
		Name:        "Starter Kit",
		Description: "Brushes",
		Price:       799,
		Category:    entity.ProductDigital,
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	assert.Zero(t, repo.readCount())
}

func TestCreateTier_RejectsNonPositivePrice(t *testing.T) {
	_, uc := setupUseCase(t)
	luna := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	_, err := uc.CreateTier(context.Background(), &entity.NewTier{
		CreatorID:   luna.ID,
		Name:        "Free",
		Price:       0,
		Description: "Nothing",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreatePost_TierGating(t *testing.T) {
	_, uc := setupUseCase(t)
	ctx := context.Background()
	luna := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	_, err := uc.CreatePost(ctx, &entity.NewPost{
		CreatorID: luna.ID,
		Title:     "Patron only",
		Content:   "Secret",
		IsPublic:  false,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	ten := 10
	gated, err := uc.CreatePost(ctx, &entity.NewPost{
		CreatorID:    luna.ID,
		Title:        "Patron only",
		Content:      "Secret",
		MinTierPrice: &ten,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, gated.RequiredTierPrice())

	in := &entity.NewPost{
		CreatorID:    luna.ID,
		Title:        "Hello",
		Content:      "Everyone welcome",
		IsPublic:     true,
		MinTierPrice: &ten,
	}
	public, err := uc.CreatePost(ctx, in)
	require.NoError(t, err)
	assert.Nil(t, public.MinTierPrice)
	assert.NotNil(t, in.MinTierPrice)
}

func TestCreateProduct(t *testing.T) {
	_, uc := setupUseCase(t)
	ctx := context.Background()
	luna := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	product, err := uc.CreateProduct(ctx, &entity.NewProduct{
		CreatorID:   luna.ID,
		Name:        "Brush Pack",
		Description: "50 brushes",
		Price:       1299,
		Category:    entity.ProductDigital,
	})
	require.NoError(t, err)
	assert.Equal(t, "$12.99", product.DisplayPrice())

	_, err = uc.CreateProduct(ctx, &entity.NewProduct{
		CreatorID:   luna.ID,
		Name:        "Mystery",
		Description: "?",
		Price:       100,
		Category:    entity.ProductCategory("subscription"),
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCategories(t *testing.T) {
	_, uc := setupUseCase(t)

	categories := uc.Categories()
	require.Len(t, categories, len(entity.CreatorCategories)+1)
	assert.Equal(t, entity.CategoryAll, categories[0])
	assert.Equal(t, string(entity.CategoryArt), categories[1])
}

func TestCachedReads_ServedFromCache(t *testing.T) {
	repo, uc, _ := setupCachedUseCase(t)
	ctx := context.Background()
	mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	_, err := uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	reads := repo.readCount()

	view, err := uc.ListCreators(ctx, listing.Query{Search: "luna"})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, reads, repo.readCount())
}

func TestCachedReads_ReadAfterWrite(t *testing.T) {
	_, uc, _ := setupCachedUseCase(t)
	ctx := context.Background()
	luna := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	view, err := uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	tiers, err := uc.GetCreatorTiers(ctx, "luna-artistry")
	require.NoError(t, err)
	assert.Empty(t, tiers)

	mustCreateCreator(t, uc, newCreatorInput("beat-master", "Beat Master", entity.CategoryMusic))
	_, err = uc.CreateTier(ctx, &entity.NewTier{
		CreatorID:   luna.ID,
		Name:        "Supporter",
		Price:       3,
		Description: "Show your support",
	})
	require.NoError(t, err)

	view, err = uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)
	tiers, err = uc.GetCreatorTiers(ctx, "luna-artistry")
	require.NoError(t, err)
	assert.Len(t, tiers, 1)
}

func TestCachedReads_WriteDuringLoadIsNotServedStale(t *testing.T) {
	repo, uc, _ := setupCachedUseCase(t)
	ctx := context.Background()
	mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	repo.afterList = func() {
		mustCreateCreator(t, uc, newCreatorInput("beat-master", "Beat Master", entity.CategoryMusic))
	}

	view, err := uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)

	view, err = uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)
}

func TestCachedReads_NotFoundIsNotCached(t *testing.T) {
	_, uc, mr := setupCachedUseCase(t)
	ctx := context.Background()

	_, err := uc.GetCreatorBySlug(ctx, "luna-artistry")
	require.Error(t, err)
	assert.Empty(t, mr.Keys())
}

func TestCachedReads_DegradeWhenRedisDown(t *testing.T) {
	_, uc, mr := setupCachedUseCase(t)
	ctx := context.Background()
	mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))

	mr.Close()

	view, err := uc.ListCreators(ctx, listing.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCreate_PublishesEvent(t *testing.T) {
	repo := newFakeCatalogRepo()
	publisher := new(MockPublisher)
	uc := NewCatalogUseCase(repo, nil, publisher, testLogger())

	publisher.On("PublishCatalogEvent", mock.MatchedBy(func(e queue.CatalogEvent) bool {
		return e.Type == queue.EventCatalogChanged && e.Entity == "creator" && e.Slug == "luna-artistry"
	})).Return(nil).Once()
	publisher.On("PublishCatalogEvent", mock.MatchedBy(func(e queue.CatalogEvent) bool {
		return e.Entity == "product" && e.Slug == "luna-artistry"
	})).Return(errors.New("broker down")).Once()

	luna := mustCreateCreator(t, uc, newCreatorInput("luna-artistry", "Luna Artistry", entity.CategoryArt))
	_, err := uc.CreateProduct(context.Background(), &entity.NewProduct{
		CreatorID:   luna.ID,
		Name:        "Print",
		Description: "A3 print",
		Price:       2500,
		Category:    entity.ProductPhysical,
	})
	require.NoError(t, err)

	publisher.AssertExpectations(t)
}

func TestInvalidateCache(t *testing.T) {
	_, uc, mr := setupCachedUseCase(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("catalog:v1:/api/creators", "[]"))
	require.NoError(t, mr.Set("rate_limit:x", "1"))

	require.NoError(t, uc.InvalidateCache(ctx))
	assert.False(t, mr.Exists("catalog:v1:/api/creators"))
	assert.True(t, mr.Exists("rate_limit:x"))
}
