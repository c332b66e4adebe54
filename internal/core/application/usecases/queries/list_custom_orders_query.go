package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListCustomOrdersQueryIsNotConstructed = errors.New(
		"ListCustomOrdersQuery must be created via NewListCustomOrdersQuery constructor",
	)
)

// ListCustomOrdersQuery retrieves a page of custom orders visible to the
// actor. Non-admins only ever see requests they are a party to; admins see
// everything. Optional filters narrow by party side and status.
//
// Example:
//
//	page, _ := NewPage(1, 20)
//	query, err := NewListCustomOrdersQuery(actor, AsBuyer, nil, page)
//	if err != nil {
//	    return fmt.Errorf("invalid listing parameters: %w", err)
//	}
//	resp, err := handler.Handle(ctx, query)
type ListCustomOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  services.Actor
	party  PartyFilter
	status *customorder.Status
	page   Page

	guard guard.ConstructorGuard
}

// NewListCustomOrdersQuery creates a query for a page of custom orders.
// Pass a nil status to skip status filtering.
func NewListCustomOrdersQuery(
	actor services.Actor,
	party PartyFilter,
	status *customorder.Status,
	page Page,
) (ListCustomOrdersQuery, error) {
	q := ListCustomOrdersQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setActor(actor),
		q.setParty(party),
		q.setStatus(status),
	); err != nil {
		return ListCustomOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomOrdersQueryIsNotConstructed)
}

// Actor returns the identity the listing is scoped to.
func (q ListCustomOrdersQuery) Actor() services.Actor {
	return q.actor
}

// Party returns the party-side filter.
func (q ListCustomOrdersQuery) Party() PartyFilter {
	return q.party
}

// Status returns the status filter, or nil for all statuses.
func (q ListCustomOrdersQuery) Status() *customorder.Status {
	return q.status
}

// Page returns the pagination window.
func (q ListCustomOrdersQuery) Page() Page {
	return q.page
}

func (q *ListCustomOrdersQuery) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

func (q *ListCustomOrdersQuery) setParty(party PartyFilter) error {
	if err := party.Validate(); err != nil {
		return err
	}
	q.party = party
	return nil
}

func (q *ListCustomOrdersQuery) setStatus(status *customorder.Status) error {
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

// CustomOrderReadModel is the projection of a custom order returned by the
// listing query.
type CustomOrderReadModel struct {
	ID           kernel.UUID
	BuyerID      kernel.UUID
	SellerID     *kernel.UUID
	Title        string
	Description  string
	MaxPrice     kernel.Money
	DeliveryType customorder.DeliveryType
	Deadline     *time.Time
	Status       customorder.Status
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	DeclinedAt   *time.Time
	CompletedAt  *time.Time
}

// ListCustomOrdersQueryResponse is a page of custom order read models plus
// window metadata.
type ListCustomOrdersQueryResponse struct {
	Items []CustomOrderReadModel
	Meta  PageMeta
}
