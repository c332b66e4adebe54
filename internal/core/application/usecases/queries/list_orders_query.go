package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders visible to the actor.
// Non-admins only ever see orders they are a party to; admins see
// everything. Optional filters narrow by party side and status.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  services.Actor
	party  PartyFilter
	status *order.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
// Pass a nil status to skip status filtering.
func NewListOrdersQuery(
	actor services.Actor,
	party PartyFilter,
	status *order.Status,
	page Page,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(actor),
		q.setParty(party),
		q.setStatus(status),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the identity the listing is scoped to.
func (q ListOrdersQuery) Actor() services.Actor {
	return q.actor
}

// Party returns the party-side filter.
func (q ListOrdersQuery) Party() PartyFilter {
	return q.party
}

// Status returns the status filter, or nil for all statuses.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the pagination window.
func (q ListOrdersQuery) Page() Page {
	return q.page
}

func (q *ListOrdersQuery) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

func (q *ListOrdersQuery) setParty(party PartyFilter) error {
	if err := party.Validate(); err != nil {
		return err
	}
	q.party = party
	return nil
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	s := *status
	q.status = &s
	return nil
}

// OrderReadModel is the projection of an order returned by the listing query.
type OrderReadModel struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	SellerID        kernel.UUID
	ProductID       *kernel.UUID
	CustomOrderID   *kernel.UUID
	Price           kernel.Money
	DeliveryAddress string
	TrackingNumber  string
	Status          order.Status
	CreatedAt       time.Time
}

// ListOrdersQueryResponse is a page of order read models plus window metadata.
type ListOrdersQueryResponse struct {
	Items []OrderReadModel
	Meta  PageMeta
}
