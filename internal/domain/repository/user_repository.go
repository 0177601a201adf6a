package repository

import (
	"mindsync-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	// FindByID preloads role and both profile relations.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
}
