package dto

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID    int    `json:"doctor_id" validate:"required,min=1"`
	PatientName string `json:"patient_name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
}

type AppointmentHistoryRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
}

// Response DTOs

// BookingConfirmation carries what the caller needs to relay a successful
// booking: the new appointment id plus the echoed booking details.
type BookingConfirmation struct {
	AppointmentID int    `json:"appointment_id"`
	DoctorName    string `json:"doctor_name"`
	PatientName   string `json:"patient_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// AppointmentHistoryEntry joins an appointment to its doctor for display.
type AppointmentHistoryEntry struct {
	DoctorName      string  `json:"doctor_name"`
	Hospital        string  `json:"hospital"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	ConsultationFee float64 `json:"consultation_fee"`
}
