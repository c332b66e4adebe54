// Package userrepo provides data transfer objects and mapping functions for
// user persistence. The core only reads users and rewrites their derived
// reputation fields; account management lives outside this service.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string
	Role        int
	Suspended   bool
	Rating      *float64
	ReviewCount int
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID().Bytes(),
		Email:       u.Email(),
		Role:        int(u.Role()),
		Suspended:   u.IsSuspended(),
		Rating:      u.Rating(),
		ReviewCount: u.ReviewCount(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		user.Role(dto.Role),
		dto.Suspended,
		dto.Rating,
		dto.ReviewCount,
	)
}
