package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product" json:"product_id"`
	UserID    primitive.ObjectID `bson:"user" json:"user_id"`
	Rating    int64              `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt int64              `bson:"created_at" json:"created_at"`
}

// ReviewStats is the recomputed aggregate over all reviews of one product.
type ReviewStats struct {
	AverageRating float64
	TotalReviews  int64
}

// ComputeReviewStats derives the mean rating and count from the full review
// set. An empty set yields zeroes, never NaN.
func ComputeReviewStats(reviews []Review) ReviewStats {
	if len(reviews) == 0 {
		return ReviewStats{}
	}

	var sum int64
	for _, review := range reviews {
		sum += review.Rating
	}

	return ReviewStats{
		AverageRating: float64(sum) / float64(len(reviews)),
		TotalReviews:  int64(len(reviews)),
	}
}
