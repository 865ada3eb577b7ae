package repo

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestApplyProductFilter(t *testing.T) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("id").From("products")

	testCases := []struct {
		name     string
		filter   entities.ProductFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "empty",
			wantSQL: "SELECT id FROM products",
		},
		{
			name:     "name is exact",
			filter:   entities.ProductFilter{Name: ptr("tea")},
			wantSQL:  "SELECT id FROM products WHERE name = $1",
			wantArgs: []any{"tea"},
		},
		{
			name:     "description escapes wildcards",
			filter:   entities.ProductFilter{Description: ptr("100%_green")},
			wantSQL:  "SELECT id FROM products WHERE description ILIKE $1",
			wantArgs: []any{`%100\%\_green%`},
		},
		{
			name: "price range",
			filter: entities.ProductFilter{
				MinPrice: ptr(decimal.RequireFromString("5.00")),
				MaxPrice: ptr(decimal.RequireFromString("10.50")),
			},
			wantSQL: "SELECT id FROM products WHERE price >= $1 AND price <= $2",
			wantArgs: []any{
				decimal.RequireFromString("5.00"),
				decimal.RequireFromString("10.50"),
			},
		},
		{
			name:    "limit",
			filter:  entities.ProductFilter{Limit: 50},
			wantSQL: "SELECT id FROM products LIMIT 50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := applyProductFilter(base, tc.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, query)
			if tc.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestApplyOrderFilter(t *testing.T) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("id").From("orders")
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		filter   entities.OrderFilter
		wantSQL  string
		wantArgs int
	}{
		{
			name:    "empty",
			wantSQL: "SELECT id FROM orders",
		},
		{
			name:     "owner and status",
			filter:   entities.OrderFilter{UserID: ptr(int64(3)), Status: ptr(entities.OrderStatusDone)},
			wantSQL:  "SELECT id FROM orders WHERE user_id = $1 AND status = $2",
			wantArgs: 2,
		},
		{
			name: "total range",
			filter: entities.OrderFilter{
				TotalAmountFrom: ptr(decimal.NewFromInt(10)),
				TotalAmountTo:   ptr(decimal.NewFromInt(100)),
			},
			wantSQL:  "SELECT id FROM orders WHERE total_amount >= $1 AND total_amount <= $2",
			wantArgs: 2,
		},
		{
			name:     "contains products",
			filter:   entities.OrderFilter{ProductIDs: []int64{1, 2}},
			wantSQL:  "SELECT id FROM orders WHERE id IN (SELECT order_id FROM positions WHERE product_id = ANY($1))",
			wantArgs: 1,
		},
		{
			name: "date ranges",
			filter: entities.OrderFilter{
				CreatedAfter:  ptr(day),
				CreatedBefore: ptr(day.Add(24 * time.Hour)),
				UpdatedAfter:  ptr(day),
				UpdatedBefore: ptr(day.Add(24 * time.Hour)),
			},
			wantSQL:  "SELECT id FROM orders WHERE created_at >= $1 AND created_at <= $2 AND updated_at >= $3 AND updated_at <= $4",
			wantArgs: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := applyOrderFilter(base, tc.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, query)
			assert.Len(t, args, tc.wantArgs)
		})
	}
}

func TestApplyReviewFilter(t *testing.T) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("r.id").From("product_reviews r")

	query, args, err := applyReviewFilter(base, entities.ReviewFilter{
		UserID:    ptr(int64(1)),
		ProductID: ptr(int64(2)),
	}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT r.id FROM product_reviews r WHERE r.user_id = $1 AND r.product_id = $2", query)
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}
