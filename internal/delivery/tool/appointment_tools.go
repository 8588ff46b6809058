package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"health-appointments/internal/datetext"
	"health-appointments/internal/delivery/dto"
	"health-appointments/internal/usecase"
	"health-appointments/pkg/validator"
)

const (
	statusSuccess = "Success"
	statusFailed  = "Failed"
)

// BookingEnvelope mirrors the JSON object the agent runtime forwards into the
// conversation after a booking attempt.
type BookingEnvelope struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	AppointmentID int    `json:"appointment_id,omitempty"`
	DoctorName    string `json:"doctor_name,omitempty"`
	PatientName   string `json:"patient_name,omitempty"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
}

// AppointmentTools exposes booking and history as agent-callable tools.
type AppointmentTools struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentTools(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentTools {
	return &AppointmentTools{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// BookAppointment books a doctor for a patient on a free-text date and time.
// Every outcome is a value: validation and lookup failures come back as a
// Failed envelope, store faults as a plain error string.
func (t *AppointmentTools) BookAppointment(ctx context.Context, args json.RawMessage) interface{} {
	var req dto.BookAppointmentRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return BookingEnvelope{
			Status:  statusFailed,
			Message: fmt.Sprintf("Error: Invalid arguments for book_appointment: %v", err),
		}
	}
	if err := t.validator.Validate(&req); err != nil {
		return BookingEnvelope{
			Status:  statusFailed,
			Message: fmt.Sprintf("Error: Invalid booking request: %s.", t.validator.FormatValidationErrors(err)),
		}
	}

	confirmation, err := t.appointmentUsecase.Book(ctx, &req)
	if err != nil {
		var rejection *datetext.Rejection
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			return BookingEnvelope{
				Status:  statusFailed,
				Message: fmt.Sprintf("Error: No doctor found with ID %d.", req.DoctorID),
			}
		case errors.As(err, &rejection):
			return BookingEnvelope{
				Status:  statusFailed,
				Message: rejection.Message,
			}
		default:
			return fmt.Sprintf("Error: Could not book appointment. Reason: %v", err)
		}
	}

	return BookingEnvelope{
		Status:        statusSuccess,
		Message:       "Appointment booked successfully!",
		AppointmentID: confirmation.AppointmentID,
		DoctorName:    confirmation.DoctorName,
		PatientName:   confirmation.PatientName,
		Date:          confirmation.Date,
		Time:          confirmation.Time,
	}
}

// GetMyAppointments lists all appointments for a patient, joined to each
// doctor's name, hospital and fee.
func (t *AppointmentTools) GetMyAppointments(ctx context.Context, args json.RawMessage) interface{} {
	var req dto.AppointmentHistoryRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return fmt.Sprintf("Error: Invalid arguments for get_my_appointments: %v", err)
	}
	if err := t.validator.Validate(&req); err != nil {
		return fmt.Sprintf("Error: Invalid history request: %s.", t.validator.FormatValidationErrors(err))
	}

	entries, err := t.appointmentUsecase.History(ctx, req.PatientName)
	if err != nil {
		if errors.Is(err, usecase.ErrNoAppointments) {
			return fmt.Sprintf("No appointments found for %s.", req.PatientName)
		}
		return fmt.Sprintf("Error: Could not load appointments. Reason: %v", err)
	}

	return entries
}
