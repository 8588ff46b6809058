package seeder

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"testing"

	"health-appointments/config"
	"health-appointments/internal/domain/entity"
	"health-appointments/internal/infrastructure/database"
	"health-appointments/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubNames struct {
	n int
}

func (s *stubNames) FirstName() string {
	s.n++
	return fmt.Sprintf("First%d", s.n)
}

func (s *stubNames) LastName() string { return "Last" }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(config.DBConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var hoursRange = regexp.MustCompile(`^\d{2}:00-\d{2}:00$`)

func TestGenerateDoctorBatchShape(t *testing.T) {
	g := NewGenerator(&stubNames{}, 1)

	doctors := g.GenerateDoctorBatch(40)
	if len(doctors) != 40 {
		t.Fatalf("got %d doctors, want 40", len(doctors))
	}

	for i, d := range doctors {
		if !strings.HasPrefix(d.Name, "Dr. ") {
			t.Fatalf("doctor %d name %q lacks the Dr. prefix", i, d.Name)
		}
		if d.ExperienceYears < 5 || d.ExperienceYears > 25 {
			t.Fatalf("doctor %d experience %d out of [5,25]", i, d.ExperienceYears)
		}
		fee := d.ConsultationFee.IntPart()
		if d.ConsultationFee.Mod(decimal.NewFromInt(100)).Sign() != 0 || fee < 800 || fee > 2500 {
			t.Fatalf("doctor %d fee %v is not a 100-multiple in [800,2500]", i, d.ConsultationFee)
		}
		if !strings.HasSuffix(d.HospitalName, ", "+d.Location) {
			t.Fatalf("doctor %d hospital %q does not end with its city %q", i, d.HospitalName, d.Location)
		}
		if len(d.VisitingHours) != 1 {
			t.Fatalf("doctor %d has %d visiting-hours entries, want exactly 1", i, len(d.VisitingHours))
		}
		for daysKey, window := range d.VisitingHours {
			days := strings.Split(daysKey, ",")
			if len(days) < 3 || len(days) > 5 {
				t.Fatalf("doctor %d has %d visiting days, want 3-5", i, len(days))
			}
			if !sort.StringsAreSorted(days) {
				t.Fatalf("doctor %d visiting days %q are not sorted", i, daysKey)
			}
			if !hoursRange.MatchString(window) {
				t.Fatalf("doctor %d window %q is not HH:00-HH:00", i, window)
			}
		}
	}
}

func TestGenerateDoctorBatchUsesFixedSets(t *testing.T) {
	g := NewGenerator(&stubNames{}, 2)

	specSet := make(map[string]bool, len(specializations))
	for _, s := range specializations {
		specSet[s] = true
	}
	locationSet := make(map[string]bool, len(locations))
	for _, l := range locations {
		locationSet[l] = true
	}

	for i, d := range g.GenerateDoctorBatch(60) {
		if !specSet[d.Specialization] {
			t.Fatalf("doctor %d specialization %q not in the fixed set", i, d.Specialization)
		}
		if !locationSet[d.Location] {
			t.Fatalf("doctor %d location %q not in the fixed set", i, d.Location)
		}
	}
}

func TestSeedIfEmptyPopulatesOnce(t *testing.T) {
	db := newTestDB(t)
	doctorRepo := repository.NewDoctorRepository()
	s := NewSeeder(db, testLogger(), doctorRepo, NewGenerator(&stubNames{}, 3))

	for i := 0; i < 2; i++ {
		if err := s.SeedIfEmpty(context.Background(), 20); err != nil {
			t.Fatalf("seed call %d failed: %v", i+1, err)
		}
	}

	count, err := doctorRepo.Count(db)
	if err != nil {
		t.Fatalf("failed to count doctors: %v", err)
	}
	if count != 20 {
		t.Fatalf("directory holds %d doctors, want 20 (single population pass)", count)
	}
}

func TestSeedIfEmptySkipsPopulatedDirectory(t *testing.T) {
	db := newTestDB(t)
	existing := entity.Doctor{
		Name: "Dr. Already Here", Specialization: "Cardiologist", Location: "Mumbai",
		ExperienceYears: 10, ConsultationFee: decimal.NewFromInt(900),
		VisitingHours: entity.VisitingHours{"Mon,Tue,Wed": "09:00-12:00"},
	}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("failed to create doctor: %v", err)
	}

	doctorRepo := repository.NewDoctorRepository()
	s := NewSeeder(db, testLogger(), doctorRepo, NewGenerator(&stubNames{}, 4))

	if err := s.SeedIfEmpty(context.Background(), 20); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	count, err := doctorRepo.Count(db)
	if err != nil {
		t.Fatalf("failed to count doctors: %v", err)
	}
	if count != 1 {
		t.Fatalf("directory holds %d doctors, want the 1 pre-existing record", count)
	}
}
