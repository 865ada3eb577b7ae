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

func TestProductHandler(t *testing.T) {
	tea := entities.Product{ID: 1, Name: "tea", Description: "green", Price: decimal.RequireFromString("3.5")}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		actor        entities.Identity
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "anonymous reads product",
			method: http.MethodGet,
			target: "/products/1",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, entities.Identity{}, int64(1)).Return(tea, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"price":"3.50"`,
		},
		{
			name:   "missing product",
			method: http.MethodGet,
			target: "/products/2",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, entities.Identity{}, int64(2)).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name:   "list with filters",
			method: http.MethodGet,
			target: "/products?name=tea&min_price=1.5&max_price=10",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().ListProducts(mock.Anything, entities.Identity{}, mock.MatchedBy(func(f entities.ProductFilter) bool {
					return f.Name != nil && *f.Name == "tea" &&
						f.Description == nil &&
						f.MinPrice != nil && f.MinPrice.Equal(decimal.RequireFromString("1.5")) &&
						f.MaxPrice != nil && f.MaxPrice.Equal(decimal.NewFromInt(10))
				})).
					Return([]entities.Product{tea}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"tea"`,
		},
		{
			name:         "list with bad price",
			method:       http.MethodGet,
			target:       "/products?min_price=cheap",
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid min_price`,
		},
		{
			name:   "admin creates product",
			method: http.MethodPost,
			target: "/products",
			body:   `{"name":"tea","description":"green","price":"3.50"}`,
			actor:  admin,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, admin, mock.MatchedBy(func(in entities.ProductInput) bool {
					return in.Name == "tea" && in.Description == "green" && in.Price.Equal(decimal.RequireFromString("3.5"))
				})).
					Return(tea, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":1`,
		},
		{
			name:   "user creates product",
			method: http.MethodPost,
			target: "/products",
			body:   `{"name":"tea","price":"3.50"}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, owner, mock.Anything).
					Return(entities.Product{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"permission denied"`,
		},
		{
			name:         "create without price",
			method:       http.MethodPost,
			target:       "/products",
			body:         `{"name":"tea"}`,
			actor:        admin,
			mockBehavior: func(svc *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Price":"required"`,
		},
		{
			name:   "negative price",
			method: http.MethodPut,
			target: "/products/1",
			body:   `{"name":"tea","price":"-1"}`,
			actor:  admin,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().UpdateProduct(mock.Anything, admin, int64(1), mock.Anything).
					Return(entities.Product{}, entities.ErrInvalidPrice).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"price must be non-negative with at most 2 decimal places"`,
		},
		{
			name:   "anonymous deletes product",
			method: http.MethodDelete,
			target: "/products/1",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().DeleteProduct(mock.Anything, entities.Identity{}, int64(1)).
					Return(entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"authentication required"`,
		},
		{
			name:   "admin deletes product",
			method: http.MethodDelete,
			target: "/products/1",
			actor:  admin,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().DeleteProduct(mock.Anything, admin, int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			h := handler.NewProductHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			status, body := serve(t, h, newRequest(tc.method, tc.target, tc.body, tc.actor))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
