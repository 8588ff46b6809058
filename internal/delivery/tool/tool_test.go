package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"health-appointments/config"
	"health-appointments/internal/datetext"
	"health-appointments/internal/domain/entity"
	"health-appointments/internal/infrastructure/database"
	"health-appointments/internal/repository"
	"health-appointments/internal/usecase"
	"health-appointments/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newToolStack(t *testing.T) (*gorm.DB, *DoctorTools, *AppointmentTools) {
	t.Helper()
	db, err := database.NewSQLiteConnection(config.DBConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	log := testLogger()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	customValidator := validator.NewValidator()

	directoryUsecase := usecase.NewDoctorDirectoryUsecase(db, log, doctorRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, doctorRepo, appointmentRepo, datetext.NewNormalizer())

	return db, NewDoctorTools(directoryUsecase), NewAppointmentTools(appointmentUsecase, customValidator)
}

func createDoctor(t *testing.T, db *gorm.DB, name string) entity.Doctor {
	t.Helper()
	doctor := entity.Doctor{
		Name: name, Specialization: "Cardiologist", Location: "Mumbai",
		HospitalName: "City Hospital, Mumbai", ExperienceYears: 15,
		ConsultationFee: decimal.NewFromInt(1200),
		VisitingHours:   entity.VisitingHours{"Mon,Wed,Fri": "09:00-12:00"},
	}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}
	return doctor
}

func TestDispatchUnknownTool(t *testing.T) {
	registry := NewRegistry(testLogger())

	result := registry.Dispatch(context.Background(), "no_such_tool", nil)
	msg, ok := result.(string)
	if !ok || !strings.Contains(msg, "Unknown tool") {
		t.Fatalf("got %v, want an unknown-tool error string", result)
	}
}

func TestFindDoctorsNoResults(t *testing.T) {
	_, doctorTools, _ := newToolStack(t)

	result := doctorTools.FindDoctors(context.Background(), json.RawMessage(`{"specialization":"Cardiologist","location":"Mumbai"}`))
	if result != msgNoDoctorsFound {
		t.Fatalf("got %v, want the no-results message", result)
	}
}

func TestFindDoctorsReturnsSummaries(t *testing.T) {
	db, doctorTools, _ := newToolStack(t)
	createDoctor(t, db, "Dr. Meera Iyer")

	result := doctorTools.FindDoctors(context.Background(), json.RawMessage(`{"location":"mumbai"}`))
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("result must be JSON-serializable: %v", err)
	}
	var summaries []map[string]interface{}
	if err := json.Unmarshal(data, &summaries); err != nil {
		t.Fatalf("expected a JSON array, got %s", data)
	}
	if len(summaries) != 1 || summaries[0]["name"] != "Dr. Meera Iyer" {
		t.Fatalf("unexpected summaries: %s", data)
	}
	if _, ok := summaries[0]["consultation_fee"].(float64); !ok {
		t.Fatalf("consultation_fee must serialize as a JSON number, got %s", data)
	}
}

func TestBookAppointmentUnknownDoctor(t *testing.T) {
	_, _, appointmentTools := newToolStack(t)

	result := appointmentTools.BookAppointment(context.Background(), json.RawMessage(
		`{"doctor_id":42,"patient_name":"Asha Rao","date":"2030-01-01","time":"10 AM"}`))

	envelope, ok := result.(BookingEnvelope)
	if !ok {
		t.Fatalf("got %T, want BookingEnvelope", result)
	}
	if envelope.Status != statusFailed {
		t.Fatalf("got status %q, want Failed", envelope.Status)
	}
	if envelope.Message != "Error: No doctor found with ID 42." {
		t.Fatalf("got message %q", envelope.Message)
	}
}

func TestBookAppointmentValidation(t *testing.T) {
	_, _, appointmentTools := newToolStack(t)

	result := appointmentTools.BookAppointment(context.Background(), json.RawMessage(
		`{"doctor_id":1,"date":"2030-01-01","time":"10 AM"}`))

	envelope, ok := result.(BookingEnvelope)
	if !ok || envelope.Status != statusFailed {
		t.Fatalf("got %v, want a Failed envelope", result)
	}
	if !strings.Contains(envelope.Message, "patient_name is required") {
		t.Fatalf("got message %q", envelope.Message)
	}
}

func TestBookAppointmentSuccessEnvelope(t *testing.T) {
	db, _, appointmentTools := newToolStack(t)
	doctor := createDoctor(t, db, "Dr. Meera Iyer")

	args, _ := json.Marshal(map[string]interface{}{
		"doctor_id": doctor.ID, "patient_name": "Asha Rao", "date": "2030-01-01", "time": "10 AM",
	})
	result := appointmentTools.BookAppointment(context.Background(), args)

	envelope, ok := result.(BookingEnvelope)
	if !ok {
		t.Fatalf("got %T, want BookingEnvelope", result)
	}
	if envelope.Status != statusSuccess {
		t.Fatalf("got status %q (%s), want Success", envelope.Status, envelope.Message)
	}
	if envelope.Message != "Appointment booked successfully!" {
		t.Fatalf("got message %q", envelope.Message)
	}
	if envelope.AppointmentID == 0 || envelope.Date != "2030-01-01" || envelope.Time != "10 AM" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestBookAppointmentPastDateLeavesNoRow(t *testing.T) {
	db, _, appointmentTools := newToolStack(t)
	doctor := createDoctor(t, db, "Dr. Meera Iyer")

	args, _ := json.Marshal(map[string]interface{}{
		"doctor_id": doctor.ID, "patient_name": "Asha Rao", "date": "2020-01-01", "time": "10 AM",
	})
	result := appointmentTools.BookAppointment(context.Background(), args)

	envelope, ok := result.(BookingEnvelope)
	if !ok || envelope.Status != statusFailed {
		t.Fatalf("got %v, want a Failed envelope", result)
	}
	if !strings.Contains(envelope.Message, "Error: Cannot book in the past") {
		t.Fatalf("got message %q", envelope.Message)
	}

	var count int64
	if err := db.Model(&entity.Appointment{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count appointments: %v", err)
	}
	if count != 0 {
		t.Fatalf("appointment table has %d rows, want 0", count)
	}
}

func TestGetMyAppointmentsEmpty(t *testing.T) {
	_, _, appointmentTools := newToolStack(t)

	result := appointmentTools.GetMyAppointments(context.Background(), json.RawMessage(`{"patient_name":"Asha Rao"}`))
	if result != "No appointments found for Asha Rao." {
		t.Fatalf("got %v", result)
	}
}

func TestServerServesLineDelimitedCalls(t *testing.T) {
	registry := NewRegistry(testLogger())
	registry.Register("echo", func(ctx context.Context, args json.RawMessage) interface{} {
		var payload map[string]string
		_ = json.Unmarshal(args, &payload)
		return payload
	})
	server := NewServer(registry, testLogger())

	in := strings.NewReader(`{"tool":"echo","args":{"hello":"world"}}` + "\n" +
		`{"tool":"missing","args":{}}` + "\n")
	var out bytes.Buffer

	if err := server.Serve(context.Background(), in, &out); err != nil {
		t.Fatalf("serve failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines, want 2: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], `"hello":"world"`) {
		t.Fatalf("first result %q should echo the args", lines[0])
	}
	if !strings.Contains(lines[1], "Unknown tool") {
		t.Fatalf("second result %q should be the unknown-tool string", lines[1])
	}
}

func TestServerStopsWhenInputCloses(t *testing.T) {
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to open pipe: %v", err)
	}
	defer pw.Close()

	server := NewServer(NewRegistry(testLogger()), testLogger())
	done := make(chan error, 1)
	go func() { done <- server.Serve(context.Background(), pr, io.Discard) }()

	if _, err := pw.Write([]byte(`{"tool":"missing","args":{}}` + "\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// closing the read half must unblock the server's pending read
	pr.Close()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, os.ErrClosed) {
			t.Fatalf("got %v, want nil or a closed-file error", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server kept waiting after its input closed")
	}
}
