package entities

import "time"

type Review struct {
	ID        int64
	UserID    int64
	Product   Product
	Text      string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReviewInput struct {
	ProductID int64
	Text      string
	Rating    int
}

func (r ReviewInput) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

type ReviewFilter struct {
	UserID        *int64
	ProductID     *int64
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
