package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/internal/service"
	mocks "github.com/SergeyBogomolovv/store-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCollectionService_CreateCollection(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCollectionRepo, products *mocks.MockProductLookup)

	in := entities.CollectionInput{Title: "summer", ProductIDs: []int64{1, 2}}
	collection := entities.Collection{ID: 5, Title: "summer", Products: []entities.Product{p1, p2}}

	testCases := []struct {
		name         string
		actor        entities.Identity
		in           entities.CollectionInput
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: admin,
			in:    in,
			mockBehavior: func(repo *mocks.MockCollectionRepo, products *mocks.MockProductLookup) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []int64{1, 2}).
					Return([]entities.Product{p1, p2}, nil).Once()
				repo.EXPECT().CreateCollection(mock.Anything, in).Return(entities.Collection{ID: 5}, nil).Once()
				repo.EXPECT().SetCollectionProducts(mock.Anything, int64(5), []int64{1, 2}).Return(nil).Once()
				repo.EXPECT().GetCollectionByID(mock.Anything, int64(5)).Return(collection, nil).Once()
			},
		},
		{
			name:         "product repeats",
			actor:        admin,
			in:           entities.CollectionInput{Title: "x", ProductIDs: []int64{1, 1}},
			mockBehavior: func(*mocks.MockCollectionRepo, *mocks.MockProductLookup) {},
			wantErr:      entities.ErrDuplicateInSelection,
		},
		{
			name:  "unknown product",
			actor: admin,
			in:    in,
			mockBehavior: func(_ *mocks.MockCollectionRepo, products *mocks.MockProductLookup) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []int64{1, 2}).
					Return([]entities.Product{p1}, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:         "regular user",
			actor:        owner,
			in:           in,
			mockBehavior: func(*mocks.MockCollectionRepo, *mocks.MockProductLookup) {},
			wantErr:      entities.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCollectionRepo(t)
			products := mocks.NewMockProductLookup(t)
			tc.mockBehavior(repo, products)

			svc := service.NewCollectionService(discardLogger(), newTxManager(t), repo, products, newPolicy(t))

			got, err := svc.CreateCollection(context.Background(), tc.actor, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, collection, got)
		})
	}
}

func TestCollectionService_ListCollections(t *testing.T) {
	repo := mocks.NewMockCollectionRepo(t)
	repo.EXPECT().ListCollections(mock.Anything).Return([]entities.Collection{{ID: 5}}, nil).Once()

	svc := service.NewCollectionService(discardLogger(), newTxManager(t), repo, mocks.NewMockProductLookup(t), newPolicy(t))

	got, err := svc.ListCollections(context.Background(), anonymous)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
