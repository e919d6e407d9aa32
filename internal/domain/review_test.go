package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeReviewStats(t *testing.T) {
	testCases := []struct {
		name     string
		ratings  []int64
		expected ReviewStats
	}{
		{
			name:     "no reviews yields zeroes",
			ratings:  nil,
			expected: ReviewStats{},
		},
		{
			name:     "single review",
			ratings:  []int64{4},
			expected: ReviewStats{AverageRating: 4, TotalReviews: 1},
		},
		{
			name:     "mean over several reviews",
			ratings:  []int64{5, 4, 2},
			expected: ReviewStats{AverageRating: 11.0 / 3.0, TotalReviews: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var reviews []Review
			for _, r := range tc.ratings {
				reviews = append(reviews, Review{Rating: r})
			}

			stats := ComputeReviewStats(reviews)
			assert.InDelta(t, tc.expected.AverageRating, stats.AverageRating, 1e-9)
			assert.Equal(t, tc.expected.TotalReviews, stats.TotalReviews)
		})
	}
}
