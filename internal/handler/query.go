package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

func queryString(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

func queryInt64(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return &v, nil
}

func queryDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return &v, nil
}

// queryInt64s accepts both repeated keys and comma separated values.
func queryInt64s(q url.Values, key string) ([]int64, error) {
	var result []int64
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %q", key, part)
			}
			result = append(result, v)
		}
	}
	return result, nil
}

// queryTime accepts a date or an RFC 3339 timestamp. A bare date used as an
// upper bound covers the whole day.
func queryTime(q url.Values, key string, upper bool) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func parseProductFilter(q url.Values) (entities.ProductFilter, error) {
	var (
		f   entities.ProductFilter
		err error
	)
	f.Name = queryString(q, "name")
	f.Description = queryString(q, "description")
	if f.MinPrice, err = queryDecimal(q, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryDecimal(q, "max_price"); err != nil {
		return f, err
	}
	return f, nil
}

func parseOrderFilter(q url.Values) (entities.OrderFilter, error) {
	var (
		f   entities.OrderFilter
		err error
	)
	if f.UserID, err = queryInt64(q, "user"); err != nil {
		return f, err
	}
	if raw := q.Get("status"); raw != "" {
		status := entities.OrderStatus(raw)
		if !status.Valid() {
			return f, fmt.Errorf("invalid status: %q", raw)
		}
		f.Status = &status
	}
	if f.TotalAmountFrom, err = queryDecimal(q, "total_amount_from"); err != nil {
		return f, err
	}
	if f.TotalAmountTo, err = queryDecimal(q, "total_amount_to"); err != nil {
		return f, err
	}
	if f.ProductIDs, err = queryInt64s(q, "products"); err != nil {
		return f, err
	}
	if f.CreatedAfter, err = queryTime(q, "created_at_after", false); err != nil {
		return f, err
	}
	if f.CreatedBefore, err = queryTime(q, "created_at_before", true); err != nil {
		return f, err
	}
	if f.UpdatedAfter, err = queryTime(q, "updated_at_after", false); err != nil {
		return f, err
	}
	if f.UpdatedBefore, err = queryTime(q, "updated_at_before", true); err != nil {
		return f, err
	}
	return f, nil
}

func parseReviewFilter(q url.Values) (entities.ReviewFilter, error) {
	var (
		f   entities.ReviewFilter
		err error
	)
	if f.UserID, err = queryInt64(q, "user_id"); err != nil {
		return f, err
	}
	if f.ProductID, err = queryInt64(q, "product_id"); err != nil {
		return f, err
	}
	if f.CreatedAfter, err = queryTime(q, "created_at_after", false); err != nil {
		return f, err
	}
	if f.CreatedBefore, err = queryTime(q, "created_at_before", true); err != nil {
		return f, err
	}
	return f, nil
}
