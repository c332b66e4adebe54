// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// The unique index on OrderID enforces the one-review-per-order rule at the
// storage level, closing the race the workflow pre-check cannot.
type ReviewDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ReviewerID    uuid.UUID `gorm:"type:uuid;index"`
	RevieweeID    uuid.UUID `gorm:"type:uuid;index"`
	Overall       int
	Communication int
	Quality       int
	Comment       string
	CreatedAt     time.Time
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review domain entity to its database representation.
func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:            r.ID().Bytes(),
		OrderID:       r.OrderID().Bytes(),
		ReviewerID:    r.ReviewerID().Bytes(),
		RevieweeID:    r.RevieweeID().Bytes(),
		Overall:       r.Ratings().Overall(),
		Communication: r.Ratings().Communication(),
		Quality:       r.Ratings().Quality(),
		Comment:       r.Comment(),
		CreatedAt:     r.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review domain entity.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	reviewerID, err := kernel.UUIDFromBytes(dto.ReviewerID[:])
	if err != nil {
		return nil, err
	}
	revieweeID, err := kernel.UUIDFromBytes(dto.RevieweeID[:])
	if err != nil {
		return nil, err
	}

	ratings, err := review.NewRatings(dto.Overall, dto.Communication, dto.Quality)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id,
		orderID,
		reviewerID,
		revieweeID,
		ratings,
		dto.Comment,
		dto.CreatedAt,
	)
}
