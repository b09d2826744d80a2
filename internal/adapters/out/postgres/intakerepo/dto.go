package intakerepo

import (
	"time"

	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/kernel"
)

// ImportRequestDTO is the GORM row for import requests with its line items.
type ImportRequestDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	AgencyID   int64 `gorm:"index;not null"`
	EmployeeID int64 `gorm:"not null"`
	Note       string
	Status     string                 `gorm:"not null"`
	Lines      []ImportRequestLineDTO `gorm:"foreignKey:ImportRequestID"`
	Version    int64                  `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName overrides the default GORM table naming.
func (ImportRequestDTO) TableName() string {
	return "import_requests"
}

// ImportRequestLineDTO is the GORM row for a single requested model line. The
// model_version column holds the vehicle model year, not the optimistic lock
// counter on the parent row.
type ImportRequestLineDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	ImportRequestID int64 `gorm:"index;not null"`
	VehicleTypeID   int64 `gorm:"not null"`
	ModelVersion    string
	Color           string
	Quantity        int
}

// TableName overrides the default GORM table naming.
func (ImportRequestLineDTO) TableName() string {
	return "import_request_lines"
}

func fromDomain(aggregate *intake.ImportRequest) ImportRequestDTO {
	lines := make([]ImportRequestLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, ImportRequestLineDTO{
			ImportRequestID: aggregate.ID().Int64(),
			VehicleTypeID:   line.VehicleTypeID().Int64(),
			ModelVersion:    line.Version(),
			Color:           line.Color(),
			Quantity:        line.Quantity(),
		})
	}

	return ImportRequestDTO{
		ID:         aggregate.ID().Int64(),
		AgencyID:   aggregate.AgencyID().Int64(),
		EmployeeID: aggregate.EmployeeID().Int64(),
		Note:       aggregate.Note(),
		Status:     aggregate.Status().String(),
		Lines:      lines,
	}
}

func toDomain(dto ImportRequestDTO) (*intake.ImportRequest, error) {
	status, err := intake.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]intake.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, err := intake.NewLine(
			kernel.ID(lineDTO.VehicleTypeID),
			lineDTO.ModelVersion,
			lineDTO.Color,
			lineDTO.Quantity,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return intake.RestoreImportRequest(
		kernel.ID(dto.ID),
		kernel.ID(dto.AgencyID),
		kernel.ID(dto.EmployeeID),
		dto.Note,
		status,
		lines,
	)
}
