package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckRange(t *testing.T) {
	overflow := &pq.Error{Code: numericOutOfRange, Message: "numeric field overflow"}

	assert.ErrorIs(t, checkRange(overflow), entities.ErrValueOutOfRange)
	assert.ErrorIs(t, checkRange(fmt.Errorf("insert: %w", overflow)), entities.ErrValueOutOfRange)

	var ve *entities.ValidationError
	assert.ErrorAs(t, checkRange(overflow), &ve)

	assert.ErrorIs(t, checkRange(sql.ErrNoRows), sql.ErrNoRows)
	assert.NoError(t, checkRange(nil))

	other := &pq.Error{Code: uniqueViolation}
	assert.True(t, errors.Is(checkRange(other), other))
}

func TestUpdateProductQuery(t *testing.T) {
	r := NewPostgresRepo(nil)

	query, args := r.updateProductQuery(7, entities.ProductInput{
		Name:  "tea",
		Price: decimal.RequireFromString("3.50"),
	})

	assert.Contains(t, query, "updated_at = GREATEST(now(), updated_at)")
	assert.Contains(t, query, "WHERE id = $4")
	assert.Equal(t, []any{"tea", "", decimal.RequireFromString("3.50"), int64(7)}, args)
}
