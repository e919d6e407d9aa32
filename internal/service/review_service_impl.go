package service

import (
	"context"
	"time"

	"github.com/AsadUllahBilal/TechThrive/internal/domain"
	"github.com/AsadUllahBilal/TechThrive/internal/dto"
	"github.com/AsadUllahBilal/TechThrive/internal/repository"
	pkgdto "github.com/AsadUllahBilal/TechThrive/pkg/dto"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewServiceImpl struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	publisher   EventPublisher
}

func CreateReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, publisher EventPublisher) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, userID string, data dto.ReviewRequest) (err error) {
	if data.Rating < domain.MinRating || data.Rating > domain.MaxRating {
		return errs.ErrInvalidRating
	}

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errs.ErrClient
	}

	product, err := s.productRepo.GetProductByID(ctx, data.ProductID)
	if err != nil {
		return
	}

	err = s.reviewRepo.HandleTrx(ctx, func(ctx context.Context) error {
		_, err := s.reviewRepo.AddReview(ctx, domain.Review{
			ProductID: product.ID,
			UserID:    userOID,
			Rating:    data.Rating,
			Comment:   data.Comment,
			CreatedAt: time.Now().Unix(),
		})
		if err != nil {
			return err
		}

		return s.recomputeProductStats(ctx, data.ProductID)
	})
	if err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, data.ProductID, "review_created", dto.ReviewResponse{
		ProductID: data.ProductID,
		UserID:    userID,
		Rating:    data.Rating,
		Comment:   data.Comment,
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
	}

	return nil
}

func (s *ReviewServiceImpl) GetProductReviews(ctx context.Context, productID string) (data []dto.ReviewResponse, err error) {
	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return
	}

	for _, review := range reviews {
		resp := dto.ReviewResponse{
			ID:        review.ID.Hex(),
			ProductID: review.ProductID.Hex(),
			UserID:    review.UserID.Hex(),
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}

		user, err := s.userRepo.GetUserByID(ctx, review.UserID.Hex())
		if err == nil {
			resp.UserName = user.Name
		}

		data = append(data, resp)
	}

	return data, nil
}

func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, id string) (err error) {
	review, err := s.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return
	}

	err = s.reviewRepo.HandleTrx(ctx, func(ctx context.Context) error {
		if err := s.reviewRepo.DeleteReview(ctx, id); err != nil {
			return err
		}

		return s.recomputeProductStats(ctx, review.ProductID.Hex())
	})
	if err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, review.ProductID.Hex(), "review_deleted", dto.ReviewResponse{
		ID:        id,
		ProductID: review.ProductID.Hex(),
	}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
	}

	return nil
}

// recomputeProductStats re-reads the full review set and writes the derived
// fields back. Always read-recompute-write: incremental counters would lose
// updates when two review writes interleave, a full recompute converges no
// matter how the writes order themselves.
func (s *ReviewServiceImpl) recomputeProductStats(ctx context.Context, productID string) error {
	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return err
	}

	return s.productRepo.UpdateReviewStats(ctx, productID, domain.ComputeReviewStats(reviews))
}

// ReconcileReviewStats re-runs the aggregator over every product, repairing
// any drift left behind by a failed stat write. Invoked on a schedule.
func (s *ReviewServiceImpl) ReconcileReviewStats() {
	log.Info().Str("component", "ReconcileReviewStats").Msg("cron starts")

	ctx := context.Background()
	products, err := s.productRepo.GetProducts(ctx, pkgdto.Filter{})
	if err != nil {
		return
	}

	for _, product := range products {
		if err := s.recomputeProductStats(ctx, product.ID.Hex()); err != nil {
			log.Error().Err(err).Str("component", "ReconcileReviewStats").Msg("")
		}
	}

	log.Info().Str("component", "ReconcileReviewStats").Msg("cron ends")
}
