// Package review provides the post-completion feedback model. A review is
// written by one party of a completed order about the other party and feeds
// the reviewee's aggregate rating.
package review

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// MinRating is the lowest value of every rating dimension.
	MinRating = 1
	// MaxRating is the highest value of every rating dimension.
	MaxRating = 5
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not
	// created through NewReview or restored via RestoreReview.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")
)

// Ratings is a value object holding the three review dimensions, each an
// integer in [MinRating, MaxRating]. The overall rating is the one feeding
// the reviewee's aggregate score.
type Ratings struct {
	overall       int
	communication int
	quality       int

	isConstructed bool
}

// NewRatings creates a Ratings value with validation.
// Each dimension must be an integer between 1 and 5 inclusive.
func NewRatings(overall, communication, quality int) (Ratings, error) {
	for _, dim := range []struct {
		name  string
		value int
	}{
		{"overallRating", overall},
		{"communicationRating", communication},
		{"qualityRating", quality},
	} {
		if dim.value < MinRating || dim.value > MaxRating {
			return Ratings{}, errs.NewValueIsOutOfRangeError(dim.name, dim.value, MinRating, MaxRating)
		}
	}

	return Ratings{
		overall:       overall,
		communication: communication,
		quality:       quality,
		isConstructed: true,
	}, nil
}

// Overall returns the overall rating dimension.
func (r Ratings) Overall() int {
	return r.overall
}

// Communication returns the communication rating dimension.
func (r Ratings) Communication() int {
	return r.communication
}

// Quality returns the quality rating dimension.
func (r Ratings) Quality() int {
	return r.quality
}

// Validate checks that the Ratings value was constructed through NewRatings.
func (r Ratings) Validate() error {
	if !r.isConstructed {
		return errs.NewValueIsRequiredError("ratings must be created via NewRatings")
	}
	return nil
}

// Review represents one party's rating of the other party on a completed
// order. At most one review exists per order; deleting a review is the
// reviewer's prerogative only.
type Review struct {
	id         kernel.UUID
	orderID    kernel.UUID
	reviewerID kernel.UUID
	revieweeID kernel.UUID
	ratings    Ratings
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// NewReview creates a Review with validation. The reviewer and reviewee must
// be different users; whether they are the two parties of the referenced
// order is checked by the creating workflow, which has the order at hand.
func NewReview(
	id kernel.UUID,
	orderID kernel.UUID,
	reviewerID kernel.UUID,
	revieweeID kernel.UUID,
	ratings Ratings,
	comment string,
	now time.Time,
) (*Review, error) {
	r := &Review{
		comment:       comment,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setParties(reviewerID, revieweeID),
		r.setRatings(ratings),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(
	id kernel.UUID,
	orderID kernel.UUID,
	reviewerID kernel.UUID,
	revieweeID kernel.UUID,
	ratings Ratings,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, orderID, reviewerID, revieweeID, ratings, comment, createdAt)
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the completed order the review refers to.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// ReviewerID returns the authoring party's identifier.
func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

// RevieweeID returns the rated party's identifier.
func (r *Review) RevieweeID() kernel.UUID {
	return r.revieweeID
}

// Ratings returns the three rating dimensions.
func (r *Review) Ratings() Ratings {
	return r.ratings
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setParties(reviewerID, revieweeID kernel.UUID) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}
	if err := revieweeID.Validate(); err != nil {
		return err
	}
	if reviewerID.IsEqual(revieweeID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"revieweeId",
			errors.New("users cannot review themselves"),
		)
	}
	r.reviewerID = reviewerID
	r.revieweeID = revieweeID
	return nil
}

func (r *Review) setRatings(ratings Ratings) error {
	if err := ratings.Validate(); err != nil {
		return err
	}
	r.ratings = ratings
	return nil
}
