package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or restored via RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a confirmed marketplace transaction,
// placed either against a catalog listing or against an accepted custom
// order.
//
// Order follows these invariants:
//   - Exactly one of productID and customOrderID is set (exclusive-or)
//   - Buyer and seller are different users
//   - Price and currency are a snapshot taken at creation time and are
//     never recomputed from the source afterwards
//   - Status moves forward per the rules on Status; the tracking number is
//     set only by the seller and is never cleared once present
type Order struct {
	id              kernel.UUID
	buyerID         kernel.UUID
	sellerID        kernel.UUID
	productID       *kernel.UUID
	customOrderID   *kernel.UUID
	price           kernel.Money
	deliveryAddress string
	trackingNumber  string
	status          Status
	createdAt       time.Time

	// loadedStatus is the status the aggregate was read with; repositories
	// use it as the compare-and-swap expectation on update.
	loadedStatus Status

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Exactly one of productID and customOrderID must be given; price is the
// immutable snapshot taken from that source by the creating workflow.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	productID *kernel.UUID,
	customOrderID *kernel.UUID,
	price kernel.Money,
	deliveryAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		loadedStatus:  Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setSource(productID, customOrderID),
		o.setPrice(price),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored status
// becomes the compare-and-swap expectation for the next update.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	productID *kernel.UUID,
	customOrderID *kernel.UUID,
	price kernel.Money,
	deliveryAddress string,
	trackingNumber string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:         status,
		loadedStatus:   status,
		trackingNumber: trackingNumber,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setSource(productID, customOrderID),
		o.setPrice(price),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the fulfilling seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// ProductID returns the catalog listing the order was placed against,
// or nil for orders backed by a custom order.
func (o *Order) ProductID() *kernel.UUID {
	return o.productID
}

// CustomOrderID returns the accepted custom order backing this order,
// or nil for catalog orders.
func (o *Order) CustomOrderID() *kernel.UUID {
	return o.customOrderID
}

// Price returns the price snapshot taken at creation time.
func (o *Order) Price() kernel.Money {
	return o.price
}

// DeliveryAddress returns where the goods are to be delivered.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TrackingNumber returns the shipment tracking number, or an empty string
// while none has been set.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status the aggregate was constructed or restored
// with. Repositories use it as the expected prior status when persisting a
// transition, so two racing updates cannot both apply.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsParty reports whether the given user is the buyer or the seller.
func (o *Order) IsParty(userID kernel.UUID) bool {
	return o.buyerID.IsEqual(userID) || o.sellerID.IsEqual(userID)
}

// OtherParty returns the counterparty of the given user on this order.
// Returns an error if the user is not a party at all.
func (o *Order) OtherParty(userID kernel.UUID) (kernel.UUID, error) {
	switch {
	case o.buyerID.IsEqual(userID):
		return o.sellerID, nil
	case o.sellerID.IsEqual(userID):
		return o.buyerID, nil
	default:
		return kernel.UUID{}, errs.NewForbiddenError(
			"resolve counterparty",
			"user is neither buyer nor seller on the order",
		)
	}
}

// UpdateStatus moves the order to the target status along the seller-driven
// fulfillment path (forward step or dispute). See Status.Advance for the
// exact rules.
func (o *Order) UpdateStatus(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled along the buyer-driven path.
// Fails once the order is shipped, delivered, completed or already cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// SetTrackingNumber records the shipment tracking number. An empty value is
// rejected so an existing number can never be cleared by omission.
func (o *Order) SetTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if buyerID.IsEqual(sellerID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"sellerId",
			errors.New("buyer and seller must be different users"),
		)
	}
	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setSource(productID, customOrderID *kernel.UUID) error {
	if productID == nil && customOrderID == nil {
		return errs.NewValueIsRequiredError("productId or customOrderId")
	}
	if productID != nil && customOrderID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"productId",
			errors.New("productId and customOrderId are mutually exclusive"),
		)
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return err
		}
		id := *productID
		o.productID = &id
		return nil
	}
	if err := customOrderID.Validate(); err != nil {
		return err
	}
	id := *customOrderID
	o.customOrderID = &id
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
