package services

import "math"

// RatingCalculator is a domain service computing a user's aggregate
// reputation from the overall ratings of all reviews they received.
//
// The aggregate is the arithmetic mean rounded half-up to one decimal
// place. With no reviews the aggregate is nil, matching the "no rating
// yet" display state.
type RatingCalculator struct{}

// NewRatingCalculator creates a new RatingCalculator instance.
func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Aggregate computes the rounded mean of the given overall ratings and the
// review count. Returns (nil, 0) for an empty input.
func (c RatingCalculator) Aggregate(overallRatings []int) (*float64, int) {
	if len(overallRatings) == 0 {
		return nil, 0
	}

	sum := 0
	for _, r := range overallRatings {
		sum += r
	}

	mean := float64(sum) / float64(len(overallRatings))
	rounded := math.Floor(mean*10+0.5) / 10
	return &rounded, len(overallRatings)
}
