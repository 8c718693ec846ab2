// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserDTO is the users table. Email is stored lowercased and is unique.
type UserDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Admin        bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Int64(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Admin:        u.IsAdmin(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(kernel.ID(dto.ID), dto.Name, dto.Email, dto.PasswordHash, dto.Admin)
}
