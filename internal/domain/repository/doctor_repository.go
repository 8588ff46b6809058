package repository

import (
	"health-appointments/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Count(db *gorm.DB) (int64, error)
	CreateBatch(db *gorm.DB, doctors []entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByFilter(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error)
}
