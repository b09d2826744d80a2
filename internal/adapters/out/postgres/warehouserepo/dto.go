package warehouserepo

import (
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/warehouse"

	"github.com/lib/pq"
)

// NoteDTO is the GORM row for warehouse release notes. The note's vehicle set
// is stored as a Postgres integer array rather than a join table; the set is
// fixed while the note is pending and vehicles are loaded through their own
// repository.
type NoteDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	AgencyID    int64 `gorm:"index;not null"`
	EmployeeID  int64 `gorm:"not null"`
	ReleaseDate time.Time
	TotalAmount int64
	Reason      string
	Note        string
	Status      string        `gorm:"not null"`
	VehicleIDs  pq.Int64Array `gorm:"type:bigint[]"`
	Version     int64         `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName overrides the default GORM table naming.
func (NoteDTO) TableName() string {
	return "warehouse_release_notes"
}

func fromDomain(aggregate *warehouse.WarehouseReleaseNote) NoteDTO {
	vehicleIDs := make(pq.Int64Array, 0, len(aggregate.VehicleIDs()))
	for _, id := range aggregate.VehicleIDs() {
		vehicleIDs = append(vehicleIDs, id.Int64())
	}

	return NoteDTO{
		ID:          aggregate.ID().Int64(),
		AgencyID:    aggregate.AgencyID().Int64(),
		EmployeeID:  aggregate.EmployeeID().Int64(),
		ReleaseDate: aggregate.ReleaseDate(),
		TotalAmount: aggregate.TotalAmount().Int64(),
		Reason:      aggregate.Reason(),
		Note:        aggregate.Note(),
		Status:      aggregate.Status().String(),
		VehicleIDs:  vehicleIDs,
	}
}

func toDomain(dto NoteDTO) (*warehouse.WarehouseReleaseNote, error) {
	status, err := warehouse.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	vehicleIDs := make([]kernel.ID, 0, len(dto.VehicleIDs))
	for _, id := range dto.VehicleIDs {
		vehicleIDs = append(vehicleIDs, kernel.ID(id))
	}

	return warehouse.RestoreWarehouseReleaseNote(
		kernel.ID(dto.ID),
		kernel.ID(dto.AgencyID),
		kernel.ID(dto.EmployeeID),
		dto.ReleaseDate,
		totalAmount,
		dto.Reason,
		dto.Note,
		status,
		vehicleIDs,
	)
}
