package entities_test

import (
	"math"
	"testing"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePositions(t *testing.T) {
	testCases := []struct {
		name      string
		positions []entities.PositionInput
		wantErr   error
	}{
		{
			name: "empty",
		},
		{
			name:      "distinct products",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 4}},
		},
		{
			name:      "duplicate product with equal quantities",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 1}},
			wantErr:   entities.ErrDuplicateProduct,
		},
		{
			name:      "duplicate product with different quantities",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}, {ProductID: 1, Quantity: 7}},
			wantErr:   entities.ErrDuplicateProduct,
		},
		{
			name:      "duplicate wins over bad quantity",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: 0}, {ProductID: 1, Quantity: 1}},
			wantErr:   entities.ErrDuplicateProduct,
		},
		{
			name:      "zero quantity",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: 0}},
			wantErr:   entities.ErrInvalidQuantity,
		},
		{
			name:      "largest quantity",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: math.MaxInt32}},
		},
		{
			name:      "quantity does not fit integer column",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: math.MaxInt32 + 1}},
			wantErr:   entities.ErrInvalidQuantity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := entities.ValidatePositions(tc.positions)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCalculateTotal(t *testing.T) {
	prices := map[int64]decimal.Decimal{
		1: decimal.RequireFromString("10.00"),
		2: decimal.RequireFromString("5.00"),
		3: decimal.RequireFromString("0.10"),
	}

	testCases := []struct {
		name      string
		positions []entities.PositionInput
		want      string
	}{
		{
			name:      "two products",
			positions: []entities.PositionInput{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 4}},
			want:      "40.00",
		},
		{
			name:      "no positions",
			positions: []entities.PositionInput{},
			want:      "0.00",
		},
		{
			// 0.1 × 3 is not exact in binary floating point
			name:      "no rounding drift",
			positions: []entities.PositionInput{{ProductID: 3, Quantity: 3}},
			want:      "0.30",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.CalculateTotal(tc.positions, prices)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s, want %s", got, tc.want)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestCalculateTotal_Bounds(t *testing.T) {
	prices := map[int64]decimal.Decimal{1: decimal.RequireFromString("99999999.99")}

	got, err := entities.CalculateTotal([]entities.PositionInput{{ProductID: 1, Quantity: 1}}, prices)
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", got.StringFixed(2))

	_, err = entities.CalculateTotal([]entities.PositionInput{{ProductID: 1, Quantity: 2}}, prices)
	assert.ErrorIs(t, err, entities.ErrTotalOutOfRange)

	var ve *entities.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCalculateTotal_UnknownProduct(t *testing.T) {
	_, err := entities.CalculateTotal([]entities.PositionInput{{ProductID: 42, Quantity: 1}}, nil)

	assert.ErrorIs(t, err, entities.ErrUnknownProduct)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)

	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "42")
}

func TestProduct_MarshalRoundTrip(t *testing.T) {
	p := entities.Product{ID: 1, Name: "tea", Price: decimal.RequireFromString("12.34")}

	data, err := p.Marshal()
	require.NoError(t, err)

	var got entities.Product
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, p.ID, got.ID)
	assert.True(t, p.Price.Equal(got.Price))
}

func TestProductInput_Validate(t *testing.T) {
	for price, valid := range map[string]bool{
		"0":           true,
		"10.00":       true,
		"99999999.99": true,
		"-0.01":       false,
		"1.005":       false,
		"100000000":   false,
	} {
		err := entities.ProductInput{Name: "x", Price: decimal.RequireFromString(price)}.Validate()
		if valid {
			assert.NoError(t, err, price)
		} else {
			assert.ErrorIs(t, err, entities.ErrInvalidPrice, price)
		}
	}
}
