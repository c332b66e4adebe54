// Package customorderrepo provides data transfer objects and mapping functions for
// custom order persistence.
package customorderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomOrderDTO represents the database structure for persisting custom
// order aggregates. Indexed by party and status for the listing queries and
// the expiry sweep.
type CustomOrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID      uuid.UUID  `gorm:"type:uuid;index"`
	SellerID     *uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	Description  string
	MaxPrice     MoneyDTO `gorm:"embedded;embeddedPrefix:max_price_"`
	DeliveryType int
	Deadline     *time.Time
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	DeclinedAt   *time.Time
	CompletedAt  *time.Time
}

// TableName specifies the database table name for custom order entities.
// Overrides GORM's default naming convention to use "custom_orders".
func (CustomOrderDTO) TableName() string {
	return "custom_orders"
}

// MoneyDTO represents an embedded monetary amount with its currency code.
type MoneyDTO struct {
	Amount   float64
	Currency string `gorm:"type:varchar(3)"`
}

// fromDomain converts a custom order domain aggregate to its database representation.
func fromDomain(co *customorder.CustomOrder) CustomOrderDTO {
	var sellerID *uuid.UUID
	if id := co.SellerID(); id != nil {
		raw := id.Bytes()
		sellerID = &raw
	}

	return CustomOrderDTO{
		ID:          co.ID().Bytes(),
		BuyerID:     co.BuyerID().Bytes(),
		SellerID:    sellerID,
		Title:       co.Title(),
		Description: co.Description(),
		MaxPrice: MoneyDTO{
			Amount:   co.MaxPrice().Amount(),
			Currency: co.MaxPrice().Currency(),
		},
		DeliveryType: int(co.DeliveryType()),
		Deadline:     co.Deadline(),
		Status:       int(co.Status()),
		CreatedAt:    co.CreatedAt(),
		AcceptedAt:   co.AcceptedAt(),
		DeclinedAt:   co.DeclinedAt(),
		CompletedAt:  co.CompletedAt(),
	}
}

// toDomain converts a database DTO to a custom order domain aggregate.
// Reconstructs the complete aggregate including lifecycle timestamps using
// RestoreCustomOrder.
func toDomain(dto CustomOrderDTO) (*customorder.CustomOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var sellerID *kernel.UUID
	if dto.SellerID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.SellerID)[:])
		if sErr != nil {
			return nil, sErr
		}
		sellerID = &sID
	}

	maxPrice, err := kernel.NewMoney(dto.MaxPrice.Amount, dto.MaxPrice.Currency)
	if err != nil {
		return nil, err
	}

	return customorder.RestoreCustomOrder(
		id,
		buyerID,
		sellerID,
		dto.Title,
		dto.Description,
		maxPrice,
		customorder.DeliveryType(dto.DeliveryType),
		dto.Deadline,
		customorder.Status(dto.Status),
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.DeclinedAt,
		dto.CompletedAt,
	)
}
