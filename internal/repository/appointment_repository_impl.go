package repository

import (
	"health-appointments/internal/domain/entity"
	domainRepo "health-appointments/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

// FindByPatientName orders by the stored date and time strings; the time
// column is free text, so the ordering is lexicographic by contract.
func (r *appointmentRepository) FindByPatientName(db *gorm.DB, patientName string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("patient_name = ?", patientName).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
