package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"health-appointments/internal/converter"
	"health-appointments/internal/datetext"
	"health-appointments/internal/delivery/dto"
	"health-appointments/internal/domain/entity"
	"health-appointments/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrNoAppointments = errors.New("no appointments found")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.BookingConfirmation, error)
	History(ctx context.Context, patientName string) ([]dto.AppointmentHistoryEntry, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	normalizer      *datetext.Normalizer
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	normalizer *datetext.Normalizer,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		normalizer:      normalizer,
		now:             time.Now,
	}
}

// Book books an appointment once the doctor exists and the date resolves to a
// present-or-future day. A date rejection surfaces as *datetext.Rejection and
// writes nothing. The time string is stored verbatim; there is no guard
// against two bookings for the same doctor, date and time (known gap, the
// conversational front-end is trusted to avoid it).
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.BookingConfirmation, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	date, rejection := u.normalizer.Normalize(req.Date, u.now())
	if rejection != nil {
		return nil, rejection
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientName:     req.PatientName,
		AppointmentDate: date,
		AppointmentTime: req.Time,
		Status:          entity.AppointmentStatusBooked,
	}
	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	u.log.Infof("Appointment booked: id=%d, doctor=%d, date=%s", appointment.ID, req.DoctorID, date)

	return &dto.BookingConfirmation{
		AppointmentID: appointment.ID,
		DoctorName:    doctor.Name,
		PatientName:   req.PatientName,
		Date:          date,
		Time:          req.Time,
	}, nil
}

// History returns all appointments for a patient joined to their doctors,
// earliest date first. Zero rows is ErrNoAppointments, never a store error.
func (u *appointmentUsecase) History(ctx context.Context, patientName string) ([]dto.AppointmentHistoryEntry, error) {
	appointments, err := u.appointmentRepo.FindByPatientName(u.db.WithContext(ctx), patientName)
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", patientName, err)
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	if len(appointments) == 0 {
		return nil, ErrNoAppointments
	}

	return converter.AppointmentsToHistoryEntries(appointments), nil
}
