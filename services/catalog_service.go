package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"emoji-shop/models"
	"emoji-shop/repositories"
)

type CatalogService struct {
	store repositories.BlobStore
}

func NewCatalogService(store repositories.BlobStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListProducts fetches every key and resolves the records in parallel. On
// store failure it returns an empty slice together with the error, so the
// caller can serve a degraded response instead of failing the read path.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return []models.Product{}, err
	}

	resolved := make([]*models.Product, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			p, err := s.store.Get(gctx, key)
			if err != nil {
				return err
			}
			resolved[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return []models.Product{}, err
	}

	products := []models.Product{}
	for _, p := range resolved {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products, nil
}

// GetProduct returns (nil, nil) when the key is absent.
func (s *CatalogService) GetProduct(ctx context.Context, key string) (*models.Product, error) {
	return s.store.Get(ctx, key)
}

// SaveProduct upserts by product ID and returns the confirmation message.
func (s *CatalogService) SaveProduct(ctx context.Context, product *models.Product) (string, error) {
	if err := product.Validate(); err != nil {
		return "", err
	}
	if err := s.store.Put(ctx, product.ID, product); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved product %q", product.Name), nil
}
