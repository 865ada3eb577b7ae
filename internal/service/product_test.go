package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/internal/service"
	mocks "github.com/SergeyBogomolovv/store-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_GetProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockProductRepo, cache *mocks.MockCache)

	data, err := p1.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "success from cache",
			mockBehavior: func(_ *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return(data, true).Once()
			},
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return(nil, false).Once()
				repo.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(p1, nil).Once()
				cache.EXPECT().Set("product:1", data).Return().Once()
			},
		},
		{
			name: "broken cache entry is dropped",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("product:1").Return().Once()
				repo.EXPECT().GetProductByID(mock.Anything, int64(1)).Return(p1, nil).Once()
				cache.EXPECT().Set("product:1", data).Return().Once()
			},
		},
		{
			name: "not found",
			mockBehavior: func(repo *mocks.MockProductRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("product:1").Return(nil, false).Once()
				repo.EXPECT().GetProductByID(mock.Anything, int64(1)).
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			cache := mocks.NewMockCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewProductService(discardLogger(), repo, cache, newPolicy(t))

			got, err := svc.GetProduct(context.Background(), anonymous, 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, p1.ID, got.ID)
			assert.True(t, p1.Price.Equal(got.Price))
		})
	}
}

func TestProductService_Write(t *testing.T) {
	in := entities.ProductInput{Name: "P1", Price: decimal.RequireFromString("10.00")}

	t.Run("admin updates and invalidates cache", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().UpdateProduct(mock.Anything, int64(1), in).Return(p1, nil).Once()
		cache.EXPECT().Delete("product:1").Return().Once()

		svc := service.NewProductService(discardLogger(), repo, cache, newPolicy(t))
		_, err := svc.UpdateProduct(context.Background(), admin, 1, in)
		assert.NoError(t, err)
	})

	t.Run("admin deletes and invalidates cache", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().DeleteProduct(mock.Anything, int64(1)).Return(nil).Once()
		cache.EXPECT().Delete("product:1").Return().Once()

		svc := service.NewProductService(discardLogger(), repo, cache, newPolicy(t))
		assert.NoError(t, svc.DeleteProduct(context.Background(), admin, 1))
	})

	t.Run("regular user cannot create", func(t *testing.T) {
		svc := service.NewProductService(discardLogger(), mocks.NewMockProductRepo(t), mocks.NewMockCache(t), newPolicy(t))

		_, err := svc.CreateProduct(context.Background(), owner, in)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("negative price", func(t *testing.T) {
		svc := service.NewProductService(discardLogger(), mocks.NewMockProductRepo(t), mocks.NewMockCache(t), newPolicy(t))

		_, err := svc.CreateProduct(context.Background(), admin, entities.ProductInput{Name: "x", Price: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, entities.ErrInvalidPrice)
	})
}

func TestProductService_WarmUpCache(t *testing.T) {
	data1, err := p1.Marshal()
	require.NoError(t, err)
	data2, err := p2.Marshal()
	require.NoError(t, err)

	t.Run("fills cache with recent products", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		repo.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{Limit: 2}).
			Return([]entities.Product{p1, p2}, nil).Once()
		cache.EXPECT().Set("product:1", data1).Return().Once()
		cache.EXPECT().Set("product:2", data2).Return().Once()

		svc := service.NewProductService(discardLogger(), repo, cache, newPolicy(t))

		assert.NoError(t, svc.WarmUpCache(context.Background(), 2))
	})

	t.Run("repo error stops startup", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		cache := mocks.NewMockCache(t)
		dbErr := errors.New("db down")
		repo.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{Limit: 10}).Return(nil, dbErr).Once()

		svc := service.NewProductService(discardLogger(), repo, cache, newPolicy(t))

		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 10), dbErr)
	})

	t.Run("zero count is a no-op", func(t *testing.T) {
		svc := service.NewProductService(discardLogger(), mocks.NewMockProductRepo(t), mocks.NewMockCache(t), newPolicy(t))

		assert.NoError(t, svc.WarmUpCache(context.Background(), 0))
	})
}
