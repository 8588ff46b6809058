package seeder

import (
	"context"
	"fmt"

	"health-appointments/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder populates an empty doctor directory at process bootstrap. It never
// runs on the request path.
type Seeder struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	generator  *Generator
}

func NewSeeder(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	generator *Generator,
) *Seeder {
	return &Seeder{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		generator:  generator,
	}
}

// SeedIfEmpty bulk-inserts count generated doctors unless the directory
// already holds at least one record. Redundant calls within a process are
// no-ops; the empty-table check is the only guard, so concurrent first boots
// of separate processes can still race.
func (s *Seeder) SeedIfEmpty(ctx context.Context, count int) error {
	existing, err := s.doctorRepo.Count(s.db.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if existing > 0 {
		return nil
	}

	s.log.Infof("Doctor directory is empty. Generating %d new doctor records...", count)

	doctors := s.generator.GenerateDoctorBatch(count)
	if err := s.doctorRepo.CreateBatch(s.db.WithContext(ctx), doctors); err != nil {
		return fmt.Errorf("failed to insert generated doctors: %w", err)
	}

	s.log.Infof("Populated doctor directory with %d doctors", count)
	return nil
}
