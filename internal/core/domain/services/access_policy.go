package services

import (
	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// Actor is the opaque identity a request acts under, as extracted from the
// authentication token by the transport layer: a subject plus a role.
type Actor struct {
	ID   kernel.UUID
	Role user.Role
}

// Validate checks that the actor carries a valid subject and role.
func (a Actor) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return err
	}
	return a.Role.Validate()
}

// IsAdmin reports whether the actor holds the superuser role.
func (a Actor) IsAdmin() bool {
	return a.Role == user.Admin
}

// AccessPolicy is a domain service deciding whether an actor may perform an
// action on a resource, given role and ownership relations. It is pure:
// deterministic given its inputs, with no external state and no side effects.
//
// Admins are allowed every action and are checked first. All other denials
// are ForbiddenError values carrying the action and the reason. Status
// preconditions (for example "only accepted custom orders can be completed")
// are NOT decided here; they live on the aggregates, so that they bind
// admins too.
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.CanCancelOrder(actor, ord); err != nil {
//	    return err // ForbiddenError
//	}
//	if err := ord.Cancel(); err != nil {
//	    return err // InvalidTransitionError
//	}
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanViewCustomOrder allows the buyer, the assigned seller, and admins.
// Everyone else is denied outright: a non-party learns nothing about the
// record, not even that it exists.
func (p AccessPolicy) CanViewCustomOrder(actor Actor, co *customorder.CustomOrder) error {
	if actor.IsAdmin() {
		return nil
	}
	if !co.IsParty(actor.ID) {
		return errs.NewForbiddenError("view custom order", "actor is neither buyer nor seller")
	}
	return nil
}

// CanTransitionCustomOrder decides who may move a custom order to the target
// status: accepting, declining and completing are the assigned seller's
// moves; cancelling is open to either party.
func (p AccessPolicy) CanTransitionCustomOrder(
	actor Actor,
	co *customorder.CustomOrder,
	target customorder.Status,
) error {
	if actor.IsAdmin() {
		return nil
	}

	switch target {
	case customorder.Accepted, customorder.Declined, customorder.Completed:
		if co.SellerID() == nil || !co.SellerID().IsEqual(actor.ID) {
			return errs.NewForbiddenError(
				"transition custom order to "+target.String(),
				"actor is not the assigned seller",
			)
		}
		return nil
	case customorder.Cancelled:
		if !co.IsParty(actor.ID) {
			return errs.NewForbiddenError(
				"cancel custom order",
				"actor is neither buyer nor seller",
			)
		}
		return nil
	default:
		return errs.NewForbiddenError(
			"transition custom order to "+target.String(),
			"target status is not reachable by any actor",
		)
	}
}

// CanDeleteCustomOrder allows only the requesting buyer (and admins) to
// physically remove a custom order.
func (p AccessPolicy) CanDeleteCustomOrder(actor Actor, co *customorder.CustomOrder) error {
	if actor.IsAdmin() {
		return nil
	}
	if !co.BuyerID().IsEqual(actor.ID) {
		return errs.NewForbiddenError("delete custom order", "actor is not the buyer")
	}
	return nil
}

// CanViewOrder allows the buyer, the seller, and admins.
func (p AccessPolicy) CanViewOrder(actor Actor, o *order.Order) error {
	if actor.IsAdmin() {
		return nil
	}
	if !o.IsParty(actor.ID) {
		return errs.NewForbiddenError("view order", "actor is neither buyer nor seller")
	}
	return nil
}

// CanUpdateOrder allows only the fulfilling seller (and admins) to advance
// the order status or attach a tracking number.
func (p AccessPolicy) CanUpdateOrder(actor Actor, o *order.Order) error {
	if actor.IsAdmin() {
		return nil
	}
	if !o.SellerID().IsEqual(actor.ID) {
		return errs.NewForbiddenError("update order", "actor is not the seller")
	}
	return nil
}

// CanCancelOrder allows only the purchasing buyer (and admins) to cancel.
func (p AccessPolicy) CanCancelOrder(actor Actor, o *order.Order) error {
	if actor.IsAdmin() {
		return nil
	}
	if !o.BuyerID().IsEqual(actor.ID) {
		return errs.NewForbiddenError("cancel order", "actor is not the buyer")
	}
	return nil
}

// CanReviewOrder decides whether the actor may review the named reviewee on
// the given order. The actor must be a party, the reviewee must be the
// other party (an explicit two-branch match over buyer and seller), and the
// order must have reached Completed. Review uniqueness per order is a
// storage concern checked by the creating workflow.
func (p AccessPolicy) CanReviewOrder(actor Actor, o *order.Order, revieweeID kernel.UUID) error {
	if !actor.IsAdmin() && !o.IsParty(actor.ID) {
		return errs.NewForbiddenError("create review", "actor is neither buyer nor seller")
	}

	switch {
	case o.BuyerID().IsEqual(revieweeID):
		if !actor.IsAdmin() && !o.SellerID().IsEqual(actor.ID) {
			return errs.NewForbiddenError("create review", "only the seller may review the buyer")
		}
	case o.SellerID().IsEqual(revieweeID):
		if !actor.IsAdmin() && !o.BuyerID().IsEqual(actor.ID) {
			return errs.NewForbiddenError("create review", "only the buyer may review the seller")
		}
	default:
		return errs.NewForbiddenError("create review", "reviewee is not a party on the order")
	}

	if o.Status() != order.Completed {
		return errs.NewInvalidTransitionErrorWithCause(
			o.Status().String(), "reviewed",
			errs.NewValueIsInvalidError("only completed orders can be reviewed"),
		)
	}
	return nil
}

// CanDeleteReview allows only the authoring reviewer (and admins).
func (p AccessPolicy) CanDeleteReview(actor Actor, reviewerID kernel.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if !reviewerID.IsEqual(actor.ID) {
		return errs.NewForbiddenError("delete review", "actor is not the reviewer")
	}
	return nil
}
