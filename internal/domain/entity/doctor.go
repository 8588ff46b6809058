package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// VisitingHours maps a comma-joined set of weekday abbreviations
// ("Mon,Wed,Fri") to a time range "HH:MM-HH:MM". Every doctor carries exactly
// one entry. Stored as a JSON text column.
type VisitingHours map[string]string

func (v VisitingHours) Value() (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (v *VisitingHours) Scan(src interface{}) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return errors.New("unsupported visiting_hours column type")
	}
}

// Doctor represents a provider record in the directory
type Doctor struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null" json:"name"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ExperienceYears int             `gorm:"not null" json:"experience_years"`
	Location        string          `gorm:"type:varchar(100);index" json:"location"`
	HospitalName    string          `gorm:"type:varchar(150)" json:"hospital_name"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	VisitingHours   VisitingHours   `gorm:"type:text" json:"visiting_hours"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
