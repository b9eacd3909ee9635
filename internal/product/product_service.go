package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louiscollinsjr/miere-app/internal/i18n"
	producterrors "github.com/louiscollinsjr/miere-app/internal/product/errors"
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, locale string) (ProductListResponse, error)
	GetBySlug(ctx context.Context, slug, locale string) (ProductResponse, error)
}

type service struct {
	repo Repository

	// storageURL is the hosted storage's public base URL; product
	// images live in its buckets and are served by public URL only.
	storageURL string
}

func NewService(repo Repository, storageURL string) Service {
	return &service{
		repo:       repo,
		storageURL: strings.TrimSuffix(storageURL, "/"),
	}
}

func (s *service) List(ctx context.Context, locale string) (ProductListResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return ProductListResponse{}, err
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, s.toResponse(p, locale))
	}
	return ProductListResponse{Products: out}, nil
}

func (s *service) GetBySlug(ctx context.Context, slug, locale string) (ProductResponse, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err == sql.ErrNoRows {
		return ProductResponse{}, producterrors.ErrProductNotFound
	}
	if err != nil {
		return ProductResponse{}, err
	}
	return s.toResponse(p, locale), nil
}

func (s *service) toResponse(p Product, locale string) ProductResponse {
	name, description := p.NameEN, p.DescriptionEN
	if i18n.Normalize(locale) == i18n.LocaleRO {
		name, description = p.NameRO, p.DescriptionRO
	}

	effects := p.HealthEffects
	if effects == nil {
		effects = []string{}
	}

	return ProductResponse{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          name,
		Description:   description,
		Price:         p.Price,
		ImageURL:      s.PublicImageURL(p.ImageBucket, p.ImagePath),
		HealthEffects: effects,
	}
}

// PublicImageURL builds the public URL for an object in the hosted
// storage, e.g. <base>/storage/v1/object/public/<bucket>/<path>.
func (s *service) PublicImageURL(bucket, path string) string {
	if s.storageURL == "" || bucket == "" || path == "" {
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.storageURL, bucket, path)
}
