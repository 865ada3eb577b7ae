package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
)

type ProductRepo interface {
	CreateProduct(ctx context.Context, in entities.ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, id int64, in entities.ProductInput) (entities.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetProductByID(ctx context.Context, id int64) (entities.Product, error)
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
	policy Authorizer
}

func NewProductService(logger *slog.Logger, repo ProductRepo, cache Cache, policy Authorizer) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
		cache:  cache,
		policy: policy,
	}
}

func productKey(id int64) string {
	return "product:" + strconv.FormatInt(id, 10)
}

func (s *productService) CreateProduct(ctx context.Context, actor entities.Identity, in entities.ProductInput) (entities.Product, error) {
	if err := s.policy.Authorize(actor, entities.ActionCreate, entities.Unscoped(entities.KindProduct)); err != nil {
		return entities.Product{}, err
	}
	if err := in.Validate(); err != nil {
		return entities.Product{}, err
	}

	product, err := s.repo.CreateProduct(ctx, in)
	if err != nil {
		return entities.Product{}, err
	}
	s.logger.Debug("product created", slog.Int64("product_id", product.ID))
	return product, nil
}

// UpdateProduct changes a catalog entry. Existing order totals keep the
// price they were computed with.
func (s *productService) UpdateProduct(ctx context.Context, actor entities.Identity, id int64, in entities.ProductInput) (entities.Product, error) {
	if err := s.policy.Authorize(actor, entities.ActionUpdate, entities.Unscoped(entities.KindProduct)); err != nil {
		return entities.Product{}, err
	}
	if err := in.Validate(); err != nil {
		return entities.Product{}, err
	}

	product, err := s.repo.UpdateProduct(ctx, id, in)
	if err != nil {
		return entities.Product{}, err
	}
	s.cache.Delete(productKey(id))
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, actor entities.Identity, id int64) error {
	if err := s.policy.Authorize(actor, entities.ActionDelete, entities.Unscoped(entities.KindProduct)); err != nil {
		return err
	}
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(productKey(id))
	return nil
}

func (s *productService) GetProduct(ctx context.Context, actor entities.Identity, id int64) (entities.Product, error) {
	if err := s.policy.Authorize(actor, entities.ActionRead, entities.Unscoped(entities.KindProduct)); err != nil {
		return entities.Product{}, err
	}

	key := productKey(id)
	if data, ok := s.cache.Get(key); ok {
		var cached entities.Product
		err := cached.Unmarshal(data)
		if err == nil {
			return cached, nil
		}
		s.logger.Error("failed to unmarshal product", slog.String("key", key), slog.Any("error", err))
		s.cache.Delete(key)
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	data, err := product.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal product", slog.Int64("product_id", id), slog.Any("error", err))
		return product, nil
	}
	s.cache.Set(key, data)
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, actor entities.Identity, filter entities.ProductFilter) ([]entities.Product, error) {
	if err := s.policy.Authorize(actor, entities.ActionList, entities.Unscoped(entities.KindProduct)); err != nil {
		return nil, err
	}
	return s.repo.ListProducts(ctx, filter)
}

// WarmUpCache loads the count most recently changed products into the cache.
func (s *productService) WarmUpCache(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	products, err := s.repo.ListProducts(ctx, entities.ProductFilter{Limit: uint64(count)})
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, p := range products {
		data, err := p.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal product", slog.Int64("product_id", p.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(productKey(p.ID), data)
	}
	s.logger.Info("cache warmed up", slog.Int("count", len(products)))
	return nil
}
