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

func TestReviewService_CreateReview(t *testing.T) {
	type MockBehavior func(repo *mocks.MockReviewRepo, products *mocks.MockProductLookup)

	in := entities.ReviewInput{ProductID: 1, Text: "good", Rating: 5}
	review := entities.Review{ID: 3, UserID: owner.UserID, Product: p1, Text: "good", Rating: 5}

	testCases := []struct {
		name         string
		actor        entities.Identity
		in           entities.ReviewInput
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: owner,
			in:    in,
			mockBehavior: func(repo *mocks.MockReviewRepo, products *mocks.MockProductLookup) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []int64{1}).Return([]entities.Product{p1}, nil).Once()
				repo.EXPECT().ReviewExists(mock.Anything, owner.UserID, int64(1)).Return(false, nil).Once()
				repo.EXPECT().CreateReview(mock.Anything, owner.UserID, in).Return(review, nil).Once()
			},
		},
		{
			name:  "second review of the same product",
			actor: owner,
			in:    in,
			mockBehavior: func(repo *mocks.MockReviewRepo, products *mocks.MockProductLookup) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []int64{1}).Return([]entities.Product{p1}, nil).Once()
				repo.EXPECT().ReviewExists(mock.Anything, owner.UserID, int64(1)).Return(true, nil).Once()
			},
			wantErr: entities.ErrDuplicateReview,
		},
		{
			name:  "concurrent duplicate caught by repo",
			actor: owner,
			in:    in,
			mockBehavior: func(repo *mocks.MockReviewRepo, products *mocks.MockProductLookup) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []int64{1}).Return([]entities.Product{p1}, nil).Once()
				repo.EXPECT().ReviewExists(mock.Anything, owner.UserID, int64(1)).Return(false, nil).Once()
				repo.EXPECT().CreateReview(mock.Anything, owner.UserID, in).
					Return(entities.Review{}, entities.ErrDuplicateReview).Once()
			},
			wantErr: entities.ErrDuplicateReview,
		},
		{
			name:  "unknown product",
			actor: owner,
			in:    in,
			mockBehavior: func(_ *mocks.MockReviewRepo, products *mocks.MockProductLookup) {
				products.EXPECT().GetProductsByIDs(mock.Anything, []int64{1}).Return([]entities.Product{}, nil).Once()
			},
			wantErr: entities.ErrUnknownProduct,
		},
		{
			name:         "rating out of range",
			actor:        owner,
			in:           entities.ReviewInput{ProductID: 1, Rating: 6},
			mockBehavior: func(*mocks.MockReviewRepo, *mocks.MockProductLookup) {},
			wantErr:      entities.ErrInvalidRating,
		},
		{
			name:         "anonymous",
			actor:        anonymous,
			in:           in,
			mockBehavior: func(*mocks.MockReviewRepo, *mocks.MockProductLookup) {},
			wantErr:      entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepo(t)
			products := mocks.NewMockProductLookup(t)
			tc.mockBehavior(repo, products)

			svc := service.NewReviewService(discardLogger(), repo, products, newPolicy(t))

			got, err := svc.CreateReview(context.Background(), tc.actor, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, review, got)
		})
	}
}

func TestReviewService_UpdateReview(t *testing.T) {
	review := entities.Review{ID: 3, UserID: owner.UserID, Product: p1, Rating: 5}
	in := entities.ReviewInput{ProductID: 1, Text: "meh", Rating: 3}

	testCases := []struct {
		name    string
		actor   entities.Identity
		wantErr error
	}{
		{name: "author", actor: owner},
		{name: "admin", actor: admin},
		{name: "stranger", actor: stranger, wantErr: entities.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockReviewRepo(t)
			repo.EXPECT().GetReviewByID(mock.Anything, int64(3)).Return(review, nil).Once()
			if tc.wantErr == nil {
				repo.EXPECT().UpdateReview(mock.Anything, int64(3), in).Return(review, nil).Once()
			}

			svc := service.NewReviewService(discardLogger(), repo, mocks.NewMockProductLookup(t), newPolicy(t))

			_, err := svc.UpdateReview(context.Background(), tc.actor, 3, in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReviewService_DeleteReview(t *testing.T) {
	review := entities.Review{ID: 3, UserID: owner.UserID, Product: p1, Rating: 5}

	t.Run("author", func(t *testing.T) {
		repo := mocks.NewMockReviewRepo(t)
		repo.EXPECT().GetReviewByID(mock.Anything, int64(3)).Return(review, nil).Once()
		repo.EXPECT().DeleteReview(mock.Anything, int64(3)).Return(nil).Once()

		svc := service.NewReviewService(discardLogger(), repo, mocks.NewMockProductLookup(t), newPolicy(t))
		assert.NoError(t, svc.DeleteReview(context.Background(), owner, 3))
	})

	t.Run("anonymous", func(t *testing.T) {
		svc := service.NewReviewService(discardLogger(), mocks.NewMockReviewRepo(t), mocks.NewMockProductLookup(t), newPolicy(t))
		assert.ErrorIs(t, svc.DeleteReview(context.Background(), anonymous, 3), entities.ErrUnauthorized)
	})
}
