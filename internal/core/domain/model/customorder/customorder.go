package customorder

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrCustomOrderIsNotConstructed is returned when a CustomOrder instance was
	// not created through NewCustomOrder or restored via RestoreCustomOrder.
	ErrCustomOrderIsNotConstructed = errors.New(
		"CustomOrder must be created via NewCustomOrder constructor",
	)
)

// DeliveryType states how the buyer wants the bespoke work delivered.
type DeliveryType int

const (
	// UnknownDeliveryType represents an invalid or undefined delivery type.
	UnknownDeliveryType DeliveryType = iota

	// AsSoonAsPossible means no deadline is attached to the request.
	AsSoonAsPossible

	// ByDeadline means the request carries a delivery deadline.
	ByDeadline
)

// Validate checks if the DeliveryType value is valid.
func (d DeliveryType) Validate() error {
	if d != AsSoonAsPossible && d != ByDeadline {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryType",
			fmt.Errorf("%d is not a valid delivery type", d),
		)
	}
	return nil
}

// String returns the human-readable name of the delivery type.
func (d DeliveryType) String() string {
	switch d {
	case AsSoonAsPossible:
		return "AsSoonAsPossible"
	case ByDeadline:
		return "ByDeadline"
	default:
		return "Unknown"
	}
}

// CustomOrder is the aggregate root for a bespoke purchase request negotiated
// between a buyer and an (optionally unassigned) seller, independent of the
// catalog inventory.
//
// CustomOrder follows these invariants:
//   - Buyer and seller are never the same user
//   - A deadline is present iff the delivery type is ByDeadline, and lies
//     strictly in the future at creation time
//   - acceptedAt, declinedAt and completedAt are set exactly once, on the
//     matching transition; no timestamp is recorded for Cancelled
//   - Status transitions follow the graph defined on Status
//   - Deletion is possible only while the status is Pending, Declined or
//     Cancelled
type CustomOrder struct {
	id           kernel.UUID
	buyerID      kernel.UUID
	sellerID     *kernel.UUID
	title        string
	description  string
	maxPrice     kernel.Money
	deliveryType DeliveryType
	deadline     *time.Time
	status       Status
	createdAt    time.Time
	acceptedAt   *time.Time
	declinedAt   *time.Time
	completedAt  *time.Time

	// loadedStatus is the status the aggregate was read with; repositories
	// use it as the compare-and-swap expectation on update.
	loadedStatus Status

	isConstructed bool
}

// NewCustomOrder creates a new CustomOrder in Pending status with validation.
//
// The seller is optional; when given it must differ from the buyer (whether
// the referenced user exists and holds the Seller role is checked by the
// creating workflow, which has repository access). The deadline is required
// for ByDeadline delivery, disallowed for AsSoonAsPossible, and must lie
// strictly after now.
func NewCustomOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID *kernel.UUID,
	title string,
	description string,
	maxPrice kernel.Money,
	deliveryType DeliveryType,
	deadline *time.Time,
	now time.Time,
) (*CustomOrder, error) {
	co := &CustomOrder{
		status:        Pending,
		loadedStatus:  Pending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		co.setID(id),
		co.setBuyerID(buyerID),
		co.setSellerID(sellerID),
		co.setTitle(title),
		co.setDescription(description),
		co.setMaxPrice(maxPrice),
		co.setDelivery(deliveryType, deadline, now),
	); err != nil {
		return nil, err
	}

	return co, nil
}

// RestoreCustomOrder reconstructs a CustomOrder from persistence.
// The stored status becomes the compare-and-swap expectation for the next
// update. Deadline-vs-now validation is not reapplied: a deadline that was
// in the future at creation may legitimately be in the past now.
func RestoreCustomOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID *kernel.UUID,
	title string,
	description string,
	maxPrice kernel.Money,
	deliveryType DeliveryType,
	deadline *time.Time,
	status Status,
	createdAt time.Time,
	acceptedAt, declinedAt, completedAt *time.Time,
) (*CustomOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if deliveryType == ByDeadline && deadline == nil {
		return nil, errs.NewValueIsRequiredError("deliveryDeadline")
	}

	co := &CustomOrder{
		status:        status,
		loadedStatus:  status,
		createdAt:     createdAt,
		acceptedAt:    acceptedAt,
		declinedAt:    declinedAt,
		completedAt:   completedAt,
		deliveryType:  deliveryType,
		deadline:      deadline,
		isConstructed: true,
	}

	if err := errors.Join(
		co.setID(id),
		co.setBuyerID(buyerID),
		co.setSellerID(sellerID),
		co.setTitle(title),
		co.setDescription(description),
		co.setMaxPrice(maxPrice),
		deliveryType.Validate(),
	); err != nil {
		return nil, err
	}

	return co, nil
}

// Validate ensures the CustomOrder instance was properly constructed.
func (co *CustomOrder) Validate() error {
	if co == nil || !co.isConstructed {
		return ErrCustomOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two custom orders by their unique identifiers.
func (co *CustomOrder) IsEqual(other *CustomOrder) bool {
	return other != nil && co.id.IsEqual(other.id)
}

// ID returns the custom order's unique identifier.
func (co *CustomOrder) ID() kernel.UUID {
	return co.id
}

// BuyerID returns the requesting buyer's identifier.
func (co *CustomOrder) BuyerID() kernel.UUID {
	return co.buyerID
}

// SellerID returns the assigned seller's identifier, or nil while the
// request is unassigned.
func (co *CustomOrder) SellerID() *kernel.UUID {
	return co.sellerID
}

// Title returns the request title.
func (co *CustomOrder) Title() string {
	return co.title
}

// Description returns the request description.
func (co *CustomOrder) Description() string {
	return co.description
}

// MaxPrice returns the buyer's price ceiling for the bespoke work.
func (co *CustomOrder) MaxPrice() kernel.Money {
	return co.maxPrice
}

// DeliveryType returns how the buyer wants the work delivered.
func (co *CustomOrder) DeliveryType() DeliveryType {
	return co.deliveryType
}

// Deadline returns the delivery deadline, or nil for AsSoonAsPossible requests.
func (co *CustomOrder) Deadline() *time.Time {
	return co.deadline
}

// Status returns the current lifecycle status.
func (co *CustomOrder) Status() Status {
	return co.status
}

// LoadedStatus returns the status the aggregate was constructed or restored
// with. Repositories use it as the expected prior status when persisting a
// transition, so two racing transitions cannot both apply.
func (co *CustomOrder) LoadedStatus() Status {
	return co.loadedStatus
}

// CreatedAt returns the creation timestamp.
func (co *CustomOrder) CreatedAt() time.Time {
	return co.createdAt
}

// AcceptedAt returns when the request was accepted, or nil.
func (co *CustomOrder) AcceptedAt() *time.Time {
	return co.acceptedAt
}

// DeclinedAt returns when the request was declined, or nil.
func (co *CustomOrder) DeclinedAt() *time.Time {
	return co.declinedAt
}

// CompletedAt returns when the request was completed, or nil.
func (co *CustomOrder) CompletedAt() *time.Time {
	return co.completedAt
}

// IsParty reports whether the given user is the buyer or the assigned seller.
func (co *CustomOrder) IsParty(userID kernel.UUID) bool {
	if co.buyerID.IsEqual(userID) {
		return true
	}
	return co.sellerID != nil && co.sellerID.IsEqual(userID)
}

// TransitionTo moves the request to the target status.
//
// The move must be reachable from the current status per the state graph;
// any other pair fails with an InvalidTransitionError. On success the
// matching timestamp is recorded exactly once: Accepted sets acceptedAt,
// Declined sets declinedAt, Completed sets completedAt. Cancellation
// records no timestamp.
func (co *CustomOrder) TransitionTo(target Status, now time.Time) error {
	newStatus, err := co.status.TransitionTo(target)
	if err != nil {
		return err
	}

	co.status = newStatus
	switch newStatus {
	case Accepted:
		co.acceptedAt = &now
	case Declined:
		co.declinedAt = &now
	case Completed:
		co.completedAt = &now
	default:
	}
	return nil
}

// EnsureDeletable verifies the request may be physically removed.
// Only Pending, Declined and Cancelled requests are deletable; once a
// request has been accepted it is part of the transaction history and
// is never hard-deleted.
func (co *CustomOrder) EnsureDeletable() error {
	switch co.status {
	case Pending, Declined, Cancelled:
		return nil
	default:
		return errs.NewInvalidTransitionErrorWithCause(
			co.status.String(), "deleted",
			fmt.Errorf("custom order %s is not in a deletable status", co.id),
		)
	}
}

func (co *CustomOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	co.id = id
	return nil
}

func (co *CustomOrder) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	co.buyerID = buyerID
	return nil
}

func (co *CustomOrder) setSellerID(sellerID *kernel.UUID) error {
	if sellerID == nil {
		return nil
	}
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if sellerID.IsEqual(co.buyerID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"sellerId",
			errors.New("buyer and seller must be different users"),
		)
	}
	id := *sellerID
	co.sellerID = &id
	return nil
}

func (co *CustomOrder) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	co.title = title
	return nil
}

func (co *CustomOrder) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	co.description = description
	return nil
}

func (co *CustomOrder) setMaxPrice(maxPrice kernel.Money) error {
	if err := maxPrice.Validate(); err != nil {
		return err
	}
	co.maxPrice = maxPrice
	return nil
}

func (co *CustomOrder) setDelivery(deliveryType DeliveryType, deadline *time.Time, now time.Time) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	switch deliveryType {
	case ByDeadline:
		if deadline == nil {
			return errs.NewValueIsRequiredError("deliveryDeadline")
		}
		if !deadline.After(now) {
			return errs.NewValueIsInvalidErrorWithCause(
				"deliveryDeadline",
				fmt.Errorf("%s is not in the future", deadline.Format(time.RFC3339)),
			)
		}
		d := *deadline
		co.deadline = &d
	default:
		if deadline != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"deliveryDeadline",
				errors.New("a deadline requires the ByDeadline delivery type"),
			)
		}
	}

	co.deliveryType = deliveryType
	return nil
}
