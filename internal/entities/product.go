package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(p)
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

var maxPrice = decimal.RequireFromString("99999999.99")

// Validate checks that the price fits numeric(10,2).
func (p ProductInput) Validate() error {
	if p.Price.IsNegative() || p.Price.GreaterThan(maxPrice) || !p.Price.Equal(p.Price.Truncate(2)) {
		return ErrInvalidPrice
	}
	return nil
}

type ProductFilter struct {
	Name        *string
	Description *string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	// Limit caps the result, zero means no cap.
	Limit uint64
}
