package usecase

import (
	"sync"
	"time"

	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/repo/persistent"

	"github.com/google/uuid"
)

// fakeCatalogRepo is an in-memory CatalogRepository with call counting and
// error injection.
type fakeCatalogRepo struct {
	mu       sync.Mutex
	creators []*entity.Creator
	tiers    []*entity.Tier
	posts    []*entity.Post
	products []*entity.Product

	readErr   error
	createErr error
	reads     int

	// afterList runs once a creator listing has been read, before it is returned.
	afterList func()
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{}
}

func (f *fakeCatalogRepo) nextID() string {
	return uuid.NewString()
}

func (f *fakeCatalogRepo) GetCreatorByID(id string) (*entity.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	for _, c := range f.creators {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, persistent.ErrNotFound
}

func (f *fakeCatalogRepo) GetCreatorBySlug(slug string) (*entity.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	for _, c := range f.creators {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, persistent.ErrNotFound
}

func (f *fakeCatalogRepo) GetAllCreators() ([]*entity.Creator, error) {
	return f.filterCreators(func(*entity.Creator) bool { return true })
}

func (f *fakeCatalogRepo) GetFeaturedCreators() ([]*entity.Creator, error) {
	return f.filterCreators(func(c *entity.Creator) bool { return c.IsVerified })
}

func (f *fakeCatalogRepo) filterCreators(keep func(*entity.Creator) bool) ([]*entity.Creator, error) {
	f.mu.Lock()
	f.reads++
	if f.readErr != nil {
		f.mu.Unlock()
		return nil, f.readErr
	}
	out := []*entity.Creator{}
	for _, c := range f.creators {
		if keep(c) {
			copied := *c
			out = append(out, &copied)
		}
	}
	hook := f.afterList
	f.afterList = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateCreator(in *entity.NewCreator) (*entity.Creator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, c := range f.creators {
		if c.Slug == in.Slug {
			return nil, persistent.ErrDuplicate
		}
	}
	c := &entity.Creator{
		ID:          f.nextID(),
		Slug:        in.Slug,
		Name:        in.Name,
		Tagline:     in.Tagline,
		Description: in.Description,
		Category:    in.Category,
		AvatarURL:   in.AvatarURL,
		CoverURL:    in.CoverURL,
		PatronCount: in.PatronCount,
		PostCount:   in.PostCount,
		IsVerified:  in.IsVerified,
		SocialLinks: in.SocialLinks,
		CreatedAt:   time.Now().UTC(),
	}
	f.creators = append(f.creators, c)
	copied := *c
	return &copied, nil
}

func (f *fakeCatalogRepo) GetTiersByCreatorID(creatorID string) ([]*entity.Tier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := []*entity.Tier{}
	for _, t := range f.tiers {
		if t.CreatorID == creatorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateTier(in *entity.NewTier) (*entity.Tier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	t := &entity.Tier{
		ID:          f.nextID(),
		CreatorID:   in.CreatorID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Benefits:    in.Benefits,
		IsPopular:   in.IsPopular,
	}
	f.tiers = append(f.tiers, t)
	return t, nil
}

func (f *fakeCatalogRepo) GetPostsByCreatorID(creatorID string) ([]*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := []*entity.Post{}
	for _, p := range f.posts {
		if p.CreatorID == creatorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreatePost(in *entity.NewPost) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := &entity.Post{
		ID:           f.nextID(),
		CreatorID:    in.CreatorID,
		Title:        in.Title,
		Content:      in.Content,
		ImageURL:     in.ImageURL,
		IsPublic:     in.IsPublic,
		MinTierPrice: in.MinTierPrice,
		LikeCount:    in.LikeCount,
		CommentCount: in.CommentCount,
		CreatedAt:    time.Now().UTC(),
	}
	f.posts = append(f.posts, p)
	return p, nil
}

func (f *fakeCatalogRepo) GetProductsByCreatorID(creatorID string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := []*entity.Product{}
	for _, p := range f.products {
		if p.CreatorID == creatorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateProduct(in *entity.NewProduct) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := &entity.Product{
		ID:          f.nextID(),
		CreatorID:   in.CreatorID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		IsFeatured:  in.IsFeatured,
		SalesCount:  in.SalesCount,
		CreatedAt:   time.Now().UTC(),
	}
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeCatalogRepo) readCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (f *fakeUserRepo) Create(username, passwordHash string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return nil, persistent.ErrDuplicate
		}
	}
	u := &entity.User{ID: uuid.NewString(), Username: username, Password: passwordHash}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, persistent.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, persistent.ErrNotFound
}
