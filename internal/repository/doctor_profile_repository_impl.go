package repository

import (
	"errors"

	"mindsync-server/internal/domain/entity"
	domainRepo "mindsync-server/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, doctorID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", doctorID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindVerified(db *gorm.DB, filter entity.DoctorFilter) ([]entity.DoctorProfile, int64, error) {
	query := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.verification_status = ?", entity.VerificationStatusVerified)

	if filter.Specialty != "" {
		query = query.Where("doctor_profiles.specializations @> ?", `["`+filter.Specialty+`"]`)
	}
	if filter.MinRating > 0 {
		query = query.Where("doctor_profiles.rating_average >= ?", filter.MinRating)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("users.first_name ILIKE ? OR users.last_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []entity.DoctorProfile
	err := query.
		Preload("User").
		Order("doctor_profiles.rating_average DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Save(profile).Error
}
