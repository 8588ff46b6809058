package dto

// Request DTOs

type FindDoctorsRequest struct {
	Specialization string `json:"specialization"`
	Location       string `json:"location"`
}

// Response DTOs

// DoctorResponse is the doctor summary returned by the find_doctors tool.
type DoctorResponse struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Specialization  string            `json:"specialization"`
	ExperienceYears int               `json:"experience_years"`
	HospitalName    string            `json:"hospital_name"`
	ConsultationFee float64           `json:"consultation_fee"`
	VisitingHours   map[string]string `json:"visiting_hours"`
}
