package repository

import (
	"errors"
	"strings"

	"health-appointments/internal/domain/entity"
	domainRepo "health-appointments/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

func (r *doctorRepository) CreateBatch(db *gorm.DB, doctors []entity.Doctor) error {
	return db.CreateInBatches(doctors, 100).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByFilter(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	query := db.Model(&entity.Doctor{})

	if filter.Specialization != "" {
		query = query.Where("LOWER(specialization) LIKE ?", "%"+strings.ToLower(filter.Specialization)+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}

	query = query.Order("experience_years DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var doctors []entity.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
