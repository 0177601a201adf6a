package repository

import (
	"mindsync-server/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	// FindVerified lists verified doctors matching the directory filter
	// together with the total match count.
	FindVerified(db *gorm.DB, filter entity.DoctorFilter) ([]entity.DoctorProfile, int64, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}
