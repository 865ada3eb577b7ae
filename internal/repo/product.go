package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateProduct(ctx context.Context, in entities.ProductInput) (entities.Product, error) {
	query, args := r.qb.Insert("products").
		Columns("name", "description", "price").
		Values(in.Name, in.Description, in.Price).
		Suffix(returning(productColumns)).
		MustSql()

	var p Product
	if err := r.getContext(ctx, &p, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *postgresRepo) UpdateProduct(ctx context.Context, id int64, in entities.ProductInput) (entities.Product, error) {
	query, args := r.updateProductQuery(id, in)

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *postgresRepo) updateProductQuery(id int64, in entities.ProductInput) (string, []any) {
	return r.qb.Update("products").
		Set("name", in.Name).
		Set("description", in.Description).
		Set("price", in.Price).
		Set("updated_at", touch).
		Where(sq.Eq{"id": id}).
		Suffix(returning(productColumns)).
		MustSql()
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("products").Where(sq.Eq{"id": id}).MustSql()

	if err := r.execAffecting(ctx, entities.ErrProductNotFound, query, args...); err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id int64) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("products").
		OrderBy(defaultOrdering)
	query, args := applyProductFilter(q, filter).MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// GetProductsByIDs returns the existing products among ids. Missing ids are
// silently skipped; callers compare lengths.
func (r *postgresRepo) GetProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
