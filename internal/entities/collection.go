package entities

import "time"

type Collection struct {
	ID        int64
	Title     string
	Text      string
	Products  []Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CollectionInput struct {
	Title      string
	Text       string
	ProductIDs []int64
}

func (c CollectionInput) Validate() error {
	seen := make(map[int64]struct{}, len(c.ProductIDs))
	for _, id := range c.ProductIDs {
		if _, ok := seen[id]; ok {
			return ErrDuplicateInSelection
		}
		seen[id] = struct{}{}
	}
	return nil
}
