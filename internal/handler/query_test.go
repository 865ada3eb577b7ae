package handler

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryTime(t *testing.T) {
	q := url.Values{
		"day":   {"2024-03-01"},
		"stamp": {"2024-03-01T10:00:00Z"},
		"bad":   {"yesterday"},
	}

	lower, err := queryTime(q, "day", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *lower)

	upper, err := queryTime(q, "day", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), *upper)

	stamp, err := queryTime(q, "stamp", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), stamp.UTC())

	missing, err := queryTime(q, "missing", false)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = queryTime(q, "bad", false)
	assert.Error(t, err)
}

func TestQueryInt64s(t *testing.T) {
	ids, err := queryInt64s(url.Values{"products": {"1", "2,3", ""}}, "products")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	_, err = queryInt64s(url.Values{"products": {"1,x"}}, "products")
	assert.Error(t, err)
}

func TestParseProductFilter(t *testing.T) {
	f, err := parseProductFilter(url.Values{
		"name":      {"tea"},
		"min_price": {"1.50"},
	})
	require.NoError(t, err)

	require.NotNil(t, f.Name)
	assert.Equal(t, "tea", *f.Name)
	assert.Nil(t, f.Description)
	require.NotNil(t, f.MinPrice)
	assert.True(t, f.MinPrice.Equal(decimal.RequireFromString("1.5")))
	assert.Nil(t, f.MaxPrice)

	_, err = parseProductFilter(url.Values{"max_price": {"cheap"}})
	assert.Error(t, err)
}
