package service

import (
	"context"
	"testing"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReviewFixture() (*fakeReviewRepo, *fakeProductRepo, *fakePublisher, ReviewService, domain.Product) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Keyboard", Price: 50}
	reviewRepo := &fakeReviewRepo{}
	productRepo := newFakeProductRepo(product)
	publisher := &fakePublisher{}
	svc := CreateReviewService(reviewRepo, productRepo, newFakeUserRepo(), publisher)
	return reviewRepo, productRepo, publisher, svc, product
}

func TestAddReview_RecomputesStats(t *testing.T) {
	_, productRepo, publisher, svc, product := newReviewFixture()
	userID := primitive.NewObjectID().Hex()

	err := svc.AddReview(context.Background(), userID, dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: 4})
	require.NoError(t, err)

	err = svc.AddReview(context.Background(), userID, dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: 5, Comment: "solid"})
	require.NoError(t, err)

	stats := productRepo.stats[product.ID.Hex()]
	assert.Equal(t, int64(2), stats.TotalReviews)
	assert.InDelta(t, 4.5, stats.AverageRating, 1e-9)

	require.Len(t, publisher.events, 2)
	assert.Equal(t, "review_created", publisher.events[0].eventType)
}

func TestAddReview_InvalidRating(t *testing.T) {
	reviewRepo, productRepo, _, svc, product := newReviewFixture()
	userID := primitive.NewObjectID().Hex()

	for _, rating := range []int64{0, -1, 6, 100} {
		err := svc.AddReview(context.Background(), userID, dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: rating})
		assert.ErrorIs(t, err, errs.ErrInvalidRating)
	}

	// nothing was stored or recomputed
	assert.Empty(t, reviewRepo.reviews)
	assert.Empty(t, productRepo.stats)
}

func TestAddReview_ProductNotFound(t *testing.T) {
	_, _, _, svc, _ := newReviewFixture()

	err := svc.AddReview(context.Background(), primitive.NewObjectID().Hex(), dto.ReviewRequest{
		ProductID: primitive.NewObjectID().Hex(),
		Rating:    3,
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestAddReview_StoreFailureLeavesStatsAlone(t *testing.T) {
	reviewRepo, productRepo, publisher, svc, product := newReviewFixture()
	reviewRepo.addErr = errStoreDown

	err := svc.AddReview(context.Background(), primitive.NewObjectID().Hex(), dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: 4})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, productRepo.stats)
	assert.Empty(t, publisher.events)
}

func TestDeleteReview_RecomputesStats(t *testing.T) {
	_, productRepo, _, svc, product := newReviewFixture()
	userID := primitive.NewObjectID().Hex()

	require.NoError(t, svc.AddReview(context.Background(), userID, dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: 2}))
	require.NoError(t, svc.AddReview(context.Background(), userID, dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: 4}))

	reviews, err := svc.GetProductReviews(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	require.NoError(t, svc.DeleteReview(context.Background(), reviews[0].ID))

	stats := productRepo.stats[product.ID.Hex()]
	assert.Equal(t, int64(1), stats.TotalReviews)
	assert.InDelta(t, 4, stats.AverageRating, 1e-9)

	// deleting the last review zeroes the aggregate instead of leaving NaN
	require.NoError(t, svc.DeleteReview(context.Background(), reviews[1].ID))
	stats = productRepo.stats[product.ID.Hex()]
	assert.Zero(t, stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
}

func TestDeleteReview_NotFound(t *testing.T) {
	_, _, _, svc, _ := newReviewFixture()

	err := svc.DeleteReview(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetProductReviews_JoinsUserNames(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Mouse", Price: 25}
	user := domain.User{ID: primitive.NewObjectID(), Name: "Dina"}
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, newFakeProductRepo(product), newFakeUserRepo(user), &fakePublisher{})

	require.NoError(t, svc.AddReview(context.Background(), user.ID.Hex(), dto.ReviewRequest{ProductID: product.ID.Hex(), Rating: 5}))

	reviews, err := svc.GetProductReviews(context.Background(), product.ID.Hex())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Dina", reviews[0].UserName)
}
