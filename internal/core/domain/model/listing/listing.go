// Package listing holds the read-only catalog product model. The core never
// mutates listings; it only consults id, seller, price and availability when
// snapshotting a new order.
package listing

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrListingIsNotConstructed is returned when a Listing instance was not
	// created through the NewListing factory method.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")
)

// Listing represents a fixed-price catalog product owned by exactly one seller.
type Listing struct {
	id        kernel.UUID
	sellerID  kernel.UUID
	title     string
	price     kernel.Money
	available bool

	isConstructed bool
}

// NewListing creates a Listing instance with validation.
func NewListing(id, sellerID kernel.UUID, title string, price kernel.Money, available bool) (*Listing, error) {
	l := &Listing{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setSellerID(sellerID),
		l.setTitle(title),
		l.setPrice(price),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// SellerID returns the owning seller's identifier.
func (l *Listing) SellerID() kernel.UUID {
	return l.sellerID
}

// Title returns the listing title.
func (l *Listing) Title() string {
	return l.title
}

// Price returns the current catalog price. Orders snapshot this value at
// creation time and never read it again.
func (l *Listing) Price() kernel.Money {
	return l.price
}

// IsAvailable reports whether the listing can be ordered.
func (l *Listing) IsAvailable() bool {
	return l.available
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	l.sellerID = sellerID
	return nil
}

func (l *Listing) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}
