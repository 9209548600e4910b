package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"

	"creator-hub/pkg/apperror"
	"creator-hub/pkg/logger"
	"creator-hub/pkg/s3"
	"creator-hub/services/catalog/internal/entity"
	"creator-hub/services/catalog/internal/listing"
	"creator-hub/services/catalog/internal/usecase"
)

// assetUploader is satisfied by *s3.Client.
type assetUploader interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
}

type seeder struct {
	catalog  usecase.CatalogUseCase
	users    usecase.UserUseCase
	uploader assetUploader
	assetDir string
	rng      *rand.Rand
	log      *logger.Logger

	uploaded map[string]string
}

type seedOptions struct {
	Products     bool
	DemoUser     string
	DemoPassword string
}

func (s *seeder) Run(ctx context.Context, opts seedOptions) error {
	view, err := s.catalog.ListCreators(ctx, listing.Query{})
	if err != nil {
		return fmt.Errorf("failed to list creators: %w", err)
	}

	creators := view.Creators
	if view.Count > 0 {
		s.log.Info("Database already seeded with %d creators, skipping", view.Count)
	} else {
		s.log.Info("Seeding database...")
		creators, err = s.seedCreators(ctx)
		if err != nil {
			return err
		}
		if err := s.seedUser(ctx, opts.DemoUser, opts.DemoPassword); err != nil {
			return err
		}
	}

	if opts.Products {
		return s.seedProducts(ctx, creators)
	}
	return nil
}

func (s *seeder) seedCreators(ctx context.Context) ([]*entity.Creator, error) {
	inputs := demoCreators()
	created := make([]*entity.Creator, 0, len(inputs))

	for _, in := range inputs {
		in.AvatarURL = s.asset(in.AvatarURL, in.Slug, "avatar")
		if in.CoverURL != nil {
			in.CoverURL = strPtr(s.asset(*in.CoverURL, in.Slug, "cover"))
		}

		creator, err := s.catalog.CreateCreator(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("failed to create creator %s: %w", in.Slug, err)
		}

		for _, tier := range demoTiers(creator.ID) {
			if _, err := s.catalog.CreateTier(ctx, tier); err != nil {
				return nil, fmt.Errorf("failed to create tier %s for %s: %w", tier.Name, creator.Slug, err)
			}
		}

		for _, post := range demoPosts(creator, s.rng) {
			if _, err := s.catalog.CreatePost(ctx, post); err != nil {
				return nil, fmt.Errorf("failed to create post for %s: %w", creator.Slug, err)
			}
		}

		s.log.Info("Seeded creator %s", creator.Slug)
		created = append(created, creator)
	}
	return created, nil
}

func (s *seeder) seedUser(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	_, err := s.users.CreateUser(ctx, &entity.NewUser{Username: username, Password: password})
	if apperror.KindOf(err) == apperror.KindConflict {
		s.log.Info("User %s already exists", username)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", username, err)
	}

	s.log.Info("Created user %s", username)
	return nil
}

func (s *seeder) seedProducts(ctx context.Context, creators []*entity.Creator) error {
	for _, creator := range creators {
		existing, err := s.catalog.GetCreatorProducts(ctx, creator.Slug)
		if err != nil {
			return fmt.Errorf("failed to list products for %s: %w", creator.Slug, err)
		}

		products := demoProducts(creator, len(existing), s.rng)
		s.log.Info("%s: %d existing products, adding %d", creator.Name, len(existing), len(products))

		for _, product := range products {
			if _, err := s.catalog.CreateProduct(ctx, product); err != nil {
				return fmt.Errorf("failed to create product %s for %s: %w", product.Name, creator.Slug, err)
			}
		}
	}
	return nil
}

// asset uploads the file named by ref's base name from assetDir and returns its
// URL. Without an uploader, or when the file is missing, ref is kept as is.
// Files shared by several creators are uploaded once.
func (s *seeder) asset(ref, slug, kind string) string {
	if s.uploader == nil || s.assetDir == "" {
		return ref
	}

	name := path.Base(ref)
	if url, ok := s.uploaded[name]; ok {
		return url
	}

	f, err := os.Open(filepath.Join(s.assetDir, name))
	if err != nil {
		s.log.Warn("Asset %s not uploaded: %v", name, err)
		return ref
	}
	defer f.Close()

	key := fmt.Sprintf("creators/%s/%s%s", slug, kind, path.Ext(name))
	url, err := s.uploader.UploadFile(key, f, s3.ContentTypeFor(name))
	if err != nil {
		s.log.Warn("Asset %s not uploaded: %v", name, err)
		return ref
	}

	if s.uploaded == nil {
		s.uploaded = make(map[string]string)
	}
	s.uploaded[name] = url
	return url
}
