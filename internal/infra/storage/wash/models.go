package wash

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

const tableName = "washes"

var columns = []string{
	"id",
	"sharetribe_user_id",
	"subscription_id",
	"washer_id",
	"scheduled_start",
	"scheduled_end",
	"location_id",
	"vehicle_count",
	"status",
	"special_instructions",
	"late_cancellation_fee_applied",
	"created_at",
}

type row struct {
	ID                         int64          `db:"id"`
	SharetribeUserID           string         `db:"sharetribe_user_id"`
	SubscriptionID             sql.NullString `db:"subscription_id"`
	WasherID                   uuid.NullUUID  `db:"washer_id"`
	ScheduledStart             time.Time      `db:"scheduled_start"`
	ScheduledEnd               sql.NullTime   `db:"scheduled_end"`
	LocationID                 string         `db:"location_id"`
	VehicleCount               int            `db:"vehicle_count"`
	Status                     string         `db:"status"`
	SpecialInstructions        sql.NullString `db:"special_instructions"`
	LateCancellationFeeApplied bool           `db:"late_cancellation_fee_applied"`
	CreatedAt                  sql.NullTime   `db:"created_at"`
}

func (r *row) toDomain() *domain.Wash {
	w := &domain.Wash{
		ID:                         r.ID,
		SharetribeUserID:           r.SharetribeUserID,
		ScheduledStart:             r.ScheduledStart,
		LocationID:                 r.LocationID,
		VehicleCount:               r.VehicleCount,
		Status:                     domain.WashStatus(r.Status),
		LateCancellationFeeApplied: r.LateCancellationFeeApplied,
		CreatedAt:                  r.CreatedAt.Time,
	}
	if r.SubscriptionID.Valid {
		w.SubscriptionID = &r.SubscriptionID.String
	}
	if r.WasherID.Valid {
		w.WasherID = &r.WasherID.UUID
	}
	if r.ScheduledEnd.Valid {
		w.ScheduledEnd = &r.ScheduledEnd.Time
	}
	if r.SpecialInstructions.Valid {
		w.SpecialInstructions = &r.SpecialInstructions.String
	}
	return w
}

func nullableWasherID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}
