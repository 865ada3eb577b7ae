package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateCollection(ctx context.Context, in entities.CollectionInput) (entities.Collection, error) {
	query, args := r.qb.Insert("product_collections").
		Columns("title", "text").
		Values(in.Title, in.Text).
		Suffix(returning(collectionColumns)).
		MustSql()

	var c Collection
	if err := r.getContext(ctx, &c, query, args...); err != nil {
		return entities.Collection{}, fmt.Errorf("failed to insert collection: %w", err)
	}
	return CollectionToEntity(c, nil), nil
}

func (r *postgresRepo) UpdateCollection(ctx context.Context, id int64, in entities.CollectionInput) (entities.Collection, error) {
	query, args := r.qb.Update("product_collections").
		Set("title", in.Title).
		Set("text", in.Text).
		Set("updated_at", touch).
		Where(sq.Eq{"id": id}).
		Suffix(returning(collectionColumns)).
		MustSql()

	var c Collection
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Collection{}, entities.ErrCollectionNotFound
	}
	if err != nil {
		return entities.Collection{}, fmt.Errorf("failed to update collection: %w", err)
	}
	return CollectionToEntity(c, nil), nil
}

// SetCollectionProducts replaces the product set of a collection.
func (r *postgresRepo) SetCollectionProducts(ctx context.Context, id int64, productIDs []int64) error {
	query, args := r.qb.Delete("product_collection_products").
		Where(sq.Eq{"collection_id": id}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear collection products: %w", err)
	}

	if len(productIDs) == 0 {
		return nil
	}

	q := r.qb.Insert("product_collection_products").Columns("collection_id", "product_id")
	for _, pid := range productIDs {
		q = q.Values(id, pid)
	}
	query, args = q.MustSql()

	_, err := r.execContext(ctx, query, args...)
	switch pqCode(err) {
	case uniqueViolation:
		return entities.ErrDuplicateInSelection
	case foreignKeyViolation:
		return fmt.Errorf("%w: %w", entities.ErrUnknownProduct, entities.ErrProductNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert collection products: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteCollection(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("product_collections").Where(sq.Eq{"id": id}).MustSql()

	if err := r.execAffecting(ctx, entities.ErrCollectionNotFound, query, args...); err != nil {
		if errors.Is(err, entities.ErrCollectionNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetCollectionByID(ctx context.Context, id int64) (entities.Collection, error) {
	query, args := r.qb.Select(collectionColumns...).
		From("product_collections").
		Where(sq.Eq{"id": id}).
		MustSql()

	var c Collection
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Collection{}, entities.ErrCollectionNotFound
	}
	if err != nil {
		return entities.Collection{}, fmt.Errorf("failed to get collection: %w", err)
	}

	products, err := r.collectionProducts(ctx, []int64{id})
	if err != nil {
		return entities.Collection{}, err
	}
	return CollectionToEntity(c, products[id]), nil
}

func (r *postgresRepo) ListCollections(ctx context.Context) ([]entities.Collection, error) {
	query, args := r.qb.Select(collectionColumns...).
		From("product_collections").
		OrderBy(defaultOrdering).
		MustSql()

	var collections []Collection
	if err := r.selectContext(ctx, &collections, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select collections: %w", err)
	}

	if len(collections) == 0 {
		return []entities.Collection{}, nil
	}

	ids := make([]int64, len(collections))
	for i, c := range collections {
		ids[i] = c.ID
	}

	products, err := r.collectionProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Collection, 0, len(collections))
	for _, c := range collections {
		result = append(result, CollectionToEntity(c, products[c.ID]))
	}
	return result, nil
}

func (r *postgresRepo) collectionProducts(ctx context.Context, ids []int64) (map[int64][]Product, error) {
	query, args := r.qb.Select(
		"cp.collection_id", "p.id", "p.name", "p.description",
		"p.price", "p.created_at", "p.updated_at",
	).
		From("product_collection_products cp").
		Join("products p ON p.id = cp.product_id").
		Where(sq.Eq{"cp.collection_id": ids}).
		OrderBy("p.id").
		MustSql()

	var rows []CollectionProduct
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select collection products: %w", err)
	}

	result := make(map[int64][]Product, len(ids))
	for _, row := range rows {
		result[row.CollectionID] = append(result[row.CollectionID], row.Product)
	}
	return result, nil
}
