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

func TestCollectionHandler(t *testing.T) {
	collection := entities.Collection{
		ID:    4,
		Title: "summer",
		Products: []entities.Product{
			{ID: 1, Name: "tea", Price: decimal.RequireFromString("3.5")},
			{ID: 2, Name: "lemon", Price: decimal.RequireFromString("1")},
		},
	}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		actor        entities.Identity
		mockBehavior func(svc *mocks.MockCollectionService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/product-collections",
			body:   `{"title":"summer","products":[{"product_id":1},{"product_id":2}]}`,
			actor:  admin,
			mockBehavior: func(svc *mocks.MockCollectionService) {
				svc.EXPECT().
					CreateCollection(mock.Anything, admin, entities.CollectionInput{Title: "summer", ProductIDs: []int64{1, 2}}).
					Return(collection, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"products":[{"id":1,"name":"tea"`,
		},
		{
			name:   "create with duplicate products",
			method: http.MethodPost,
			target: "/product-collections",
			body:   `{"title":"summer","products":[{"product_id":1},{"product_id":1}]}`,
			actor:  admin,
			mockBehavior: func(svc *mocks.MockCollectionService) {
				svc.EXPECT().CreateCollection(mock.Anything, admin, mock.Anything).
					Return(entities.Collection{}, entities.ErrDuplicateInSelection).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product must not repeat in a collection"`,
		},
		{
			name:         "create without title",
			method:       http.MethodPost,
			target:       "/product-collections",
			body:         `{"products":[]}`,
			actor:        admin,
			mockBehavior: func(svc *mocks.MockCollectionService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Title":"required"`,
		},
		{
			name:   "user updates collection",
			method: http.MethodPut,
			target: "/product-collections/4",
			body:   `{"title":"winter"}`,
			actor:  owner,
			mockBehavior: func(svc *mocks.MockCollectionService) {
				svc.EXPECT().UpdateCollection(mock.Anything, owner, int64(4), mock.Anything).
					Return(entities.Collection{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"permission denied"`,
		},
		{
			name:   "list",
			method: http.MethodGet,
			target: "/product-collections",
			mockBehavior: func(svc *mocks.MockCollectionService) {
				svc.EXPECT().ListCollections(mock.Anything, entities.Identity{}).
					Return([]entities.Collection{collection}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"title":"summer"`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/product-collections/5",
			mockBehavior: func(svc *mocks.MockCollectionService) {
				svc.EXPECT().GetCollection(mock.Anything, entities.Identity{}, int64(5)).
					Return(entities.Collection{}, entities.ErrCollectionNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"collection not found"`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/product-collections/4",
			actor:  admin,
			mockBehavior: func(svc *mocks.MockCollectionService) {
				svc.EXPECT().DeleteCollection(mock.Anything, admin, int64(4)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCollectionService(t)
			tc.mockBehavior(svc)

			h := handler.NewCollectionHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			status, body := serve(t, h, newRequest(tc.method, tc.target, tc.body, tc.actor))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
