package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
)

type ReviewRepo interface {
	CreateReview(ctx context.Context, userID int64, in entities.ReviewInput) (entities.Review, error)
	UpdateReview(ctx context.Context, id int64, in entities.ReviewInput) (entities.Review, error)
	DeleteReview(ctx context.Context, id int64) error
	GetReviewByID(ctx context.Context, id int64) (entities.Review, error)
	ListReviews(ctx context.Context, filter entities.ReviewFilter) ([]entities.Review, error)
	ReviewExists(ctx context.Context, userID, productID int64) (bool, error)
}

type reviewService struct {
	logger   *slog.Logger
	repo     ReviewRepo
	products ProductLookup
	policy   Authorizer
}

func NewReviewService(logger *slog.Logger, repo ReviewRepo, products ProductLookup, policy Authorizer) *reviewService {
	return &reviewService{
		logger:   logger.With(slog.String("service", "review")),
		repo:     repo,
		products: products,
		policy:   policy,
	}
}

// CreateReview adds the actor's review of a product. A user reviews a product
// at most once.
func (s *reviewService) CreateReview(ctx context.Context, actor entities.Identity, in entities.ReviewInput) (entities.Review, error) {
	if err := s.policy.Authorize(actor, entities.ActionCreate, entities.Unscoped(entities.KindReview)); err != nil {
		return entities.Review{}, err
	}
	if err := in.Validate(); err != nil {
		return entities.Review{}, err
	}
	if err := s.ensureProduct(ctx, in.ProductID); err != nil {
		return entities.Review{}, err
	}

	exists, err := s.repo.ReviewExists(ctx, actor.UserID, in.ProductID)
	if err != nil {
		return entities.Review{}, err
	}
	if exists {
		return entities.Review{}, entities.ErrDuplicateReview
	}

	review, err := s.repo.CreateReview(ctx, actor.UserID, in)
	if err != nil {
		return entities.Review{}, err
	}
	s.logger.Debug("review created", slog.Int64("review_id", review.ID), slog.Int64("product_id", in.ProductID))
	return review, nil
}

// UpdateReview changes text and rating. The reviewed product stays the same.
func (s *reviewService) UpdateReview(ctx context.Context, actor entities.Identity, id int64, in entities.ReviewInput) (entities.Review, error) {
	if err := s.policy.Authorize(actor, entities.ActionUpdate, entities.Unscoped(entities.KindReview)); err != nil {
		return entities.Review{}, err
	}

	current, err := s.repo.GetReviewByID(ctx, id)
	if err != nil {
		return entities.Review{}, err
	}
	if err := s.policy.Authorize(actor, entities.ActionUpdate, entities.Owned(entities.KindReview, current.UserID)); err != nil {
		return entities.Review{}, err
	}
	if err := in.Validate(); err != nil {
		return entities.Review{}, err
	}
	if in.ProductID != 0 && in.ProductID != current.Product.ID {
		if err := s.ensureProduct(ctx, in.ProductID); err != nil {
			return entities.Review{}, err
		}
	}

	return s.repo.UpdateReview(ctx, id, in)
}

func (s *reviewService) DeleteReview(ctx context.Context, actor entities.Identity, id int64) error {
	if err := s.policy.Authorize(actor, entities.ActionDelete, entities.Unscoped(entities.KindReview)); err != nil {
		return err
	}

	current, err := s.repo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.Authorize(actor, entities.ActionDelete, entities.Owned(entities.KindReview, current.UserID)); err != nil {
		return err
	}
	return s.repo.DeleteReview(ctx, id)
}

func (s *reviewService) GetReview(ctx context.Context, actor entities.Identity, id int64) (entities.Review, error) {
	if err := s.policy.Authorize(actor, entities.ActionRead, entities.Unscoped(entities.KindReview)); err != nil {
		return entities.Review{}, err
	}
	return s.repo.GetReviewByID(ctx, id)
}

func (s *reviewService) ListReviews(ctx context.Context, actor entities.Identity, filter entities.ReviewFilter) ([]entities.Review, error) {
	if err := s.policy.Authorize(actor, entities.ActionList, entities.Unscoped(entities.KindReview)); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, filter)
}

func (s *reviewService) ensureProduct(ctx context.Context, id int64) error {
	products, err := s.products.GetProductsByIDs(ctx, []int64{id})
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if len(products) == 0 {
		return entities.UnknownProductError(id)
	}
	return nil
}
