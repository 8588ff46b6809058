package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"health-appointments/internal/delivery/dto"
	"health-appointments/internal/usecase"
)

const (
	msgNoDoctorsFound = "No doctors found matching your criteria. Please try a different specialization or location."
	msgStoreDown      = "Error: Could not connect to the database."
)

// DoctorTools exposes the doctor directory as agent-callable tools. Both
// search filters are optional, so requests carry no validation rules.
type DoctorTools struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorTools(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorTools {
	return &DoctorTools{
		directoryUsecase: directoryUsecase,
	}
}

// FindDoctors searches the directory by optional specialization and location.
// Returns the matching doctor summaries, or a presentable string when nothing
// matches or the store is unreachable.
func (t *DoctorTools) FindDoctors(ctx context.Context, args json.RawMessage) interface{} {
	var req dto.FindDoctorsRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return fmt.Sprintf("Error: Invalid arguments for find_doctors: %v", err)
	}

	doctors, err := t.directoryUsecase.Search(ctx, req.Specialization, req.Location)
	if err != nil {
		if errors.Is(err, usecase.ErrNoDoctorsFound) {
			return msgNoDoctorsFound
		}
		return msgStoreDown
	}

	return doctors
}
