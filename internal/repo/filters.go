package repo

import (
	"strings"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// Списки по умолчанию отдаются от недавно изменённых к старым.
const defaultOrdering = "updated_at DESC, created_at DESC, id DESC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func applyProductFilter(q sq.SelectBuilder, f entities.ProductFilter) sq.SelectBuilder {
	if f.Name != nil {
		q = q.Where(sq.Eq{"name": *f.Name})
	}
	if f.Description != nil {
		q = q.Where(sq.ILike{"description": "%" + likeEscaper.Replace(*f.Description) + "%"})
	}
	if f.MinPrice != nil {
		q = q.Where(sq.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		q = q.Where(sq.LtOrEq{"price": *f.MaxPrice})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	return q
}

func applyOrderFilter(q sq.SelectBuilder, f entities.OrderFilter) sq.SelectBuilder {
	if f.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.TotalAmountFrom != nil {
		q = q.Where(sq.GtOrEq{"total_amount": *f.TotalAmountFrom})
	}
	if f.TotalAmountTo != nil {
		q = q.Where(sq.LtOrEq{"total_amount": *f.TotalAmountTo})
	}
	if len(f.ProductIDs) > 0 {
		q = q.Where("id IN (SELECT order_id FROM positions WHERE product_id = ANY(?))", pq.Array(f.ProductIDs))
	}
	if f.CreatedAfter != nil {
		q = q.Where(sq.GtOrEq{"created_at": *f.CreatedAfter})
	}
	if f.CreatedBefore != nil {
		q = q.Where(sq.LtOrEq{"created_at": *f.CreatedBefore})
	}
	if f.UpdatedAfter != nil {
		q = q.Where(sq.GtOrEq{"updated_at": *f.UpdatedAfter})
	}
	if f.UpdatedBefore != nil {
		q = q.Where(sq.LtOrEq{"updated_at": *f.UpdatedBefore})
	}
	return q
}

func applyReviewFilter(q sq.SelectBuilder, f entities.ReviewFilter) sq.SelectBuilder {
	if f.UserID != nil {
		q = q.Where(sq.Eq{"r.user_id": *f.UserID})
	}
	if f.ProductID != nil {
		q = q.Where(sq.Eq{"r.product_id": *f.ProductID})
	}
	if f.CreatedAfter != nil {
		q = q.Where(sq.GtOrEq{"r.created_at": *f.CreatedAfter})
	}
	if f.CreatedBefore != nil {
		q = q.Where(sq.LtOrEq{"r.created_at": *f.CreatedBefore})
	}
	return q
}
