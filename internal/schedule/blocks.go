package schedule

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// BuildAvailabilityBlocks строит блоки доступности для рабочих дней месяца.
// Каждый блок открыт, пуст и вмещает maxBookings моек.
func BuildAvailabilityBlocks(washerID uuid.UUID, days []domain.EffectiveDay, maxBookings int) []domain.AvailabilityBlock {
	blocks := make([]domain.AvailabilityBlock, 0, len(days))

	for i := range days {
		day := &days[i]
		if !day.IsBookable() {
			continue
		}

		blocks = append(blocks, domain.AvailabilityBlock{
			WasherID:        washerID,
			ServiceDate:     day.Date,
			StartTime:       *day.StartTime,
			EndTime:         *day.EndTime,
			Location:        day.Zip,
			Status:          domain.AvailabilityOpen,
			MaxBookings:     maxBookings,
			CurrentBookings: 0,
		})
	}

	return blocks
}
