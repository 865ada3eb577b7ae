package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/pkg/trm"
)

type CollectionRepo interface {
	CreateCollection(ctx context.Context, in entities.CollectionInput) (entities.Collection, error)
	UpdateCollection(ctx context.Context, id int64, in entities.CollectionInput) (entities.Collection, error)
	SetCollectionProducts(ctx context.Context, id int64, productIDs []int64) error
	DeleteCollection(ctx context.Context, id int64) error
	GetCollectionByID(ctx context.Context, id int64) (entities.Collection, error)
	ListCollections(ctx context.Context) ([]entities.Collection, error)
}

type collectionService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CollectionRepo
	products  ProductLookup
	policy    Authorizer
}

func NewCollectionService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo CollectionRepo,
	products ProductLookup,
	policy Authorizer,
) *collectionService {
	return &collectionService{
		logger:    logger.With(slog.String("service", "collection")),
		txManager: txManager,
		repo:      repo,
		products:  products,
		policy:    policy,
	}
}

func (s *collectionService) CreateCollection(ctx context.Context, actor entities.Identity, in entities.CollectionInput) (entities.Collection, error) {
	if err := s.policy.Authorize(actor, entities.ActionCreate, entities.Unscoped(entities.KindCollection)); err != nil {
		return entities.Collection{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return entities.Collection{}, err
	}

	var collection entities.Collection
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repo.CreateCollection(ctx, in)
		if err != nil {
			return err
		}
		if err := s.repo.SetCollectionProducts(ctx, created.ID, in.ProductIDs); err != nil {
			return err
		}
		collection, err = s.repo.GetCollectionByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return entities.Collection{}, err
	}

	s.logger.Debug("collection created", slog.Int64("collection_id", collection.ID))
	return collection, nil
}

// UpdateCollection replaces title, text and the whole product selection.
func (s *collectionService) UpdateCollection(ctx context.Context, actor entities.Identity, id int64, in entities.CollectionInput) (entities.Collection, error) {
	if err := s.policy.Authorize(actor, entities.ActionUpdate, entities.Unscoped(entities.KindCollection)); err != nil {
		return entities.Collection{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return entities.Collection{}, err
	}

	var collection entities.Collection
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.repo.UpdateCollection(ctx, id, in); err != nil {
			return err
		}
		if err := s.repo.SetCollectionProducts(ctx, id, in.ProductIDs); err != nil {
			return err
		}
		var err error
		collection, err = s.repo.GetCollectionByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Collection{}, err
	}
	return collection, nil
}

func (s *collectionService) DeleteCollection(ctx context.Context, actor entities.Identity, id int64) error {
	if err := s.policy.Authorize(actor, entities.ActionDelete, entities.Unscoped(entities.KindCollection)); err != nil {
		return err
	}
	return s.repo.DeleteCollection(ctx, id)
}

func (s *collectionService) GetCollection(ctx context.Context, actor entities.Identity, id int64) (entities.Collection, error) {
	if err := s.policy.Authorize(actor, entities.ActionRead, entities.Unscoped(entities.KindCollection)); err != nil {
		return entities.Collection{}, err
	}
	return s.repo.GetCollectionByID(ctx, id)
}

func (s *collectionService) ListCollections(ctx context.Context, actor entities.Identity) ([]entities.Collection, error) {
	if err := s.policy.Authorize(actor, entities.ActionList, entities.Unscoped(entities.KindCollection)); err != nil {
		return nil, err
	}
	return s.repo.ListCollections(ctx)
}

func (s *collectionService) validate(ctx context.Context, in entities.CollectionInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if len(in.ProductIDs) == 0 {
		return nil
	}

	products, err := s.products.GetProductsByIDs(ctx, in.ProductIDs)
	if err != nil {
		return fmt.Errorf("failed to get products: %w", err)
	}
	found := make(map[int64]struct{}, len(products))
	for _, p := range products {
		found[p.ID] = struct{}{}
	}
	for _, id := range in.ProductIDs {
		if _, ok := found[id]; !ok {
			return entities.UnknownProductError(id)
		}
	}
	return nil
}
