// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for efficient querying by party and status.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID  `gorm:"type:uuid;index"`
	SellerID        uuid.UUID  `gorm:"type:uuid;index"`
	ProductID       *uuid.UUID `gorm:"type:uuid"`
	CustomOrderID   *uuid.UUID `gorm:"type:uuid"`
	Price           MoneyDTO   `gorm:"embedded;embeddedPrefix:price_"`
	DeliveryAddress string
	TrackingNumber  string
	Status          int `gorm:"index"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// MoneyDTO represents an embedded monetary amount with its currency code.
type MoneyDTO struct {
	Amount   float64
	Currency string `gorm:"type:varchar(3)"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var productID, customOrderID *uuid.UUID
	if id := o.ProductID(); id != nil {
		raw := id.Bytes()
		productID = &raw
	}
	if id := o.CustomOrderID(); id != nil {
		raw := id.Bytes()
		customOrderID = &raw
	}

	return OrderDTO{
		ID:            o.ID().Bytes(),
		BuyerID:       o.BuyerID().Bytes(),
		SellerID:      o.SellerID().Bytes(),
		ProductID:     productID,
		CustomOrderID: customOrderID,
		Price: MoneyDTO{
			Amount:   o.Price().Amount(),
			Currency: o.Price().Currency(),
		},
		DeliveryAddress: o.DeliveryAddress(),
		TrackingNumber:  o.TrackingNumber(),
		Status:          int(o.Status()),
		CreatedAt:       o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the price snapshot using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var productID, customOrderID *kernel.UUID
	if dto.ProductID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if pErr != nil {
			return nil, pErr
		}
		productID = &pID
	}
	if dto.CustomOrderID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CustomOrderID)[:])
		if cErr != nil {
			return nil, cErr
		}
		customOrderID = &cID
	}

	price, err := kernel.NewMoney(dto.Price.Amount, dto.Price.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		buyerID,
		sellerID,
		productID,
		customOrderID,
		price,
		dto.DeliveryAddress,
		dto.TrackingNumber,
		order.Status(dto.Status),
		dto.CreatedAt,
	)
}
