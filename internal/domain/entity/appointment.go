package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// AppointmentStatusBooked is the only status this subsystem produces.
	AppointmentStatusBooked AppointmentStatus = "Booked"
)

// Appointment represents a booked slot against a doctor. The date is always
// canonical YYYY-MM-DD; the time is whatever the caller supplied, verbatim.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID        int               `gorm:"not null;index" json:"doctor_id"`
	PatientName     string            `gorm:"type:varchar(100);not null;index" json:"patient_name"`
	AppointmentDate string            `gorm:"type:varchar(10);not null" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(50);not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Booked'" json:"status"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsBooked checks if the appointment is in booked status
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}
