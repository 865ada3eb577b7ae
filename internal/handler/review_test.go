package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/store-service/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewHandler(t *testing.T) {
	product := entities.Product{ID: 1, Name: "tea", Price: decimal.RequireFromString("3.5")}
	review := entities.Review{ID: 3, UserID: owner.UserID, Product: product, Text: "good", Rating: 5}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		actor        entities.Identity
		mockBehavior func(svc *mocks.MockReviewService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/product-reviews",
			body:   `{"product_id":1,"text":"good","rating":5}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().
					CreateReview(mock.Anything, owner, entities.ReviewInput{ProductID: 1, Text: "good", Rating: 5}).
					Return(review, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"product":{"id":1,"name":"tea","description":"","price":"3.50"`,
		},
		{
			name:   "second review",
			method: http.MethodPost,
			target: "/product-reviews",
			body:   `{"product_id":1,"text":"again","rating":4}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().CreateReview(mock.Anything, owner, mock.Anything).
					Return(entities.Review{}, entities.ErrDuplicateReview).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"user already reviewed this product"`,
		},
		{
			name:         "missing product",
			method:       http.MethodPost,
			target:       "/product-reviews",
			body:         `{"text":"good","rating":5}`,
			actor:        owner,
			mockBehavior: func(svc *mocks.MockReviewService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ProductID":"required"`,
		},
		{
			name:   "list by product",
			method: http.MethodGet,
			target: "/product-reviews?product_id=1",
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().ListReviews(mock.Anything, entities.Identity{}, mock.MatchedBy(func(f entities.ReviewFilter) bool {
					return f.ProductID != nil && *f.ProductID == 1 && f.UserID == nil
				})).
					Return([]entities.Review{review}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"user":1`,
		},
		{
			name:   "delete someone else's review",
			method: http.MethodDelete,
			target: "/product-reviews/3",
			actor:  entities.Identity{UserID: 2},
			mockBehavior: func(svc *mocks.MockReviewService) {
				svc.EXPECT().DeleteReview(mock.Anything, mock.Anything, int64(3)).Return(entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockReviewService(t)
			tc.mockBehavior(svc)

			h := handler.NewReviewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			status, body := serve(t, h, newRequest(tc.method, tc.target, tc.body, tc.actor))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
