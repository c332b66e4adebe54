// Package listingrepo provides read-only access to catalog listings.
// The core never writes listings; it only snapshots price, currency and
// seller at order creation time.
package listingrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO represents the database structure of a catalog listing.
type ListingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	Price     MoneyDTO `gorm:"embedded;embeddedPrefix:price_"`
	Available bool
}

// TableName specifies the database table name for listing entities.
// Overrides GORM's default naming convention to use "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

// MoneyDTO represents an embedded monetary amount with its currency code.
type MoneyDTO struct {
	Amount   float64
	Currency string `gorm:"type:varchar(3)"`
}

// toDomain converts a database DTO to a listing domain entity.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price.Amount, dto.Price.Currency)
	if err != nil {
		return nil, err
	}

	return listing.NewListing(id, sellerID, dto.Title, price, dto.Available)
}
