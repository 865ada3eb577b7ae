package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const reviewOrdering = "r.updated_at DESC, r.created_at DESC, r.id DESC"

func (r *postgresRepo) reviewQuery() sq.SelectBuilder {
	return r.qb.Select(reviewColumns...).
		From("product_reviews r").
		Join("products p ON p.id = r.product_id")
}

func (r *postgresRepo) CreateReview(ctx context.Context, userID int64, in entities.ReviewInput) (entities.Review, error) {
	query, args := r.qb.Insert("product_reviews").
		Columns("user_id", "product_id", "text", "rating").
		Values(userID, in.ProductID, in.Text, in.Rating).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	switch pqCode(err) {
	case uniqueViolation:
		return entities.Review{}, entities.ErrDuplicateReview
	case foreignKeyViolation:
		return entities.Review{}, entities.UnknownProductError(in.ProductID)
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return r.GetReviewByID(ctx, id)
}

// UpdateReview changes text and rating; the author and product stay fixed.
func (r *postgresRepo) UpdateReview(ctx context.Context, id int64, in entities.ReviewInput) (entities.Review, error) {
	query, args := r.qb.Update("product_reviews").
		Set("text", in.Text).
		Set("rating", in.Rating).
		Set("updated_at", touch).
		Where(sq.Eq{"id": id}).
		MustSql()

	if err := r.execAffecting(ctx, entities.ErrReviewNotFound, query, args...); err != nil {
		if errors.Is(err, entities.ErrReviewNotFound) {
			return entities.Review{}, err
		}
		return entities.Review{}, fmt.Errorf("failed to update review: %w", err)
	}

	return r.GetReviewByID(ctx, id)
}

func (r *postgresRepo) DeleteReview(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("product_reviews").Where(sq.Eq{"id": id}).MustSql()

	if err := r.execAffecting(ctx, entities.ErrReviewNotFound, query, args...); err != nil {
		if errors.Is(err, entities.ErrReviewNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetReviewByID(ctx context.Context, id int64) (entities.Review, error) {
	query, args := r.reviewQuery().Where(sq.Eq{"r.id": id}).MustSql()

	var review Review
	err := r.getContext(ctx, &review, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Review{}, entities.ErrReviewNotFound
	}
	if err != nil {
		return entities.Review{}, fmt.Errorf("failed to get review: %w", err)
	}
	return ReviewToEntity(review), nil
}

func (r *postgresRepo) ListReviews(ctx context.Context, filter entities.ReviewFilter) ([]entities.Review, error) {
	query, args := applyReviewFilter(r.reviewQuery(), filter).
		OrderBy(reviewOrdering).
		MustSql()

	var reviews []Review
	if err := r.selectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select reviews: %w", err)
	}

	result := make([]entities.Review, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, ReviewToEntity(review))
	}
	return result, nil
}

func (r *postgresRepo) ReviewExists(ctx context.Context, userID, productID int64) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("product_reviews").
		Where(sq.Eq{"user_id": userID, "product_id": productID}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return exists, nil
}
