package availability

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

const tableName = "washer_availability"

var columns = []string{
	"id",
	"washer_id",
	"service_date",
	"start_time",
	"end_time",
	"location",
	"status",
	"max_bookings",
	"current_bookings",
	"created_at",
}

// row строка таблицы washer_availability
type row struct {
	ID              int64            `db:"id"`
	WasherID        uuid.UUID        `db:"washer_id"`
	ServiceDate     time.Time        `db:"service_date"`
	StartTime       types.TimeString `db:"start_time"`
	EndTime         types.TimeString `db:"end_time"`
	Location        string           `db:"location"`
	Status          string           `db:"status"`
	MaxBookings     int              `db:"max_bookings"`
	CurrentBookings int              `db:"current_bookings"`
	CreatedAt       sql.NullTime     `db:"created_at"`
}

func (r *row) toDomain() *domain.AvailabilityBlock {
	return &domain.AvailabilityBlock{
		ID:              r.ID,
		WasherID:        r.WasherID,
		ServiceDate:     domain.CivilDate(r.ServiceDate),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Location:        r.Location,
		Status:          domain.AvailabilityStatus(r.Status),
		MaxBookings:     r.MaxBookings,
		CurrentBookings: r.CurrentBookings,
		CreatedAt:       r.CreatedAt.Time,
	}
}

func toDomainList(rows []row) []*domain.AvailabilityBlock {
	blocks := make([]*domain.AvailabilityBlock, 0, len(rows))
	for i := range rows {
		blocks = append(blocks, rows[i].toDomain())
	}
	return blocks
}
