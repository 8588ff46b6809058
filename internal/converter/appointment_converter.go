package converter

import (
	"health-appointments/internal/delivery/dto"
	"health-appointments/internal/domain/entity"
)

// AppointmentToHistoryEntry converts an Appointment (with its Doctor loaded)
// to an AppointmentHistoryEntry DTO
func AppointmentToHistoryEntry(appointment *entity.Appointment) *dto.AppointmentHistoryEntry {
	if appointment == nil {
		return nil
	}

	fee, _ := appointment.Doctor.ConsultationFee.Float64()

	return &dto.AppointmentHistoryEntry{
		DoctorName:      appointment.Doctor.Name,
		Hospital:        appointment.Doctor.HospitalName,
		Date:            appointment.AppointmentDate,
		Time:            appointment.AppointmentTime,
		ConsultationFee: fee,
	}
}

// AppointmentsToHistoryEntries converts a slice of Appointments to history DTOs
func AppointmentsToHistoryEntries(appointments []entity.Appointment) []dto.AppointmentHistoryEntry {
	entries := make([]dto.AppointmentHistoryEntry, len(appointments))
	for i, appointment := range appointments {
		entry := AppointmentToHistoryEntry(&appointment)
		if entry != nil {
			entries[i] = *entry
		}
	}
	return entries
}
