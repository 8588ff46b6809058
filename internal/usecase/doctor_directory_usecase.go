package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"health-appointments/internal/converter"
	"health-appointments/internal/delivery/dto"
	"health-appointments/internal/domain/entity"
	"health-appointments/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNoDoctorsFound = errors.New("no doctors found matching the criteria")

// searchResultLimit caps directory searches at the five most experienced matches.
const searchResultLimit = 5

type DoctorDirectoryUsecase interface {
	Search(ctx context.Context, specialization, location string) ([]dto.DoctorResponse, error)
}

type doctorDirectoryUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// Search returns up to five doctors matching the optional specialization and
// location filters, most experienced first. Zero matches is a distinct
// outcome (ErrNoDoctorsFound) from a store failure.
func (u *doctorDirectoryUsecase) Search(ctx context.Context, specialization, location string) ([]dto.DoctorResponse, error) {
	filter := &entity.DoctorFilter{
		Specialization: canonicalSpecialization(specialization),
		Location:       location,
		Limit:          searchResultLimit,
	}

	doctors, err := u.doctorRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}
	if len(doctors) == 0 {
		return nil, ErrNoDoctorsFound
	}

	return converter.DoctorsToResponses(doctors), nil
}

// canonicalSpecialization rewrites any "physician" phrasing to the canonical
// "General Physician" specialization before the substring match runs.
func canonicalSpecialization(specialization string) string {
	if strings.Contains(strings.ToLower(specialization), "physician") {
		return "General Physician"
	}
	return specialization
}
