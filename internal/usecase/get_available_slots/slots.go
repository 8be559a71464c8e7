package get_available_slots

import (
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

type windowKey struct {
	start string
	end   string
}

// aggregateSlots группирует блоки со свободными местами по окну (start, end).
// Заполненные и закрытые блоки не учитываются.
func aggregateSlots(blocks []*domain.AvailabilityBlock, washers map[uuid.UUID]*domain.Washer) []domain.AvailableSlot {
	index := make(map[windowKey]int)
	slots := make([]domain.AvailableSlot, 0)

	for _, b := range blocks {
		if !b.HasCapacity() {
			continue
		}

		key := windowKey{start: b.StartTime.String(), end: b.EndTime.String()}
		i, ok := index[key]
		if !ok {
			slots = append(slots, domain.AvailableSlot{
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
			})
			i = len(slots) - 1
			index[key] = i
		}

		slot := &slots[i]
		slot.OpenBlocks++
		slot.TotalCapacityRemaining += b.RemainingCapacity()
		slot.AvailabilityIDs = append(slot.AvailabilityIDs, b.ID)

		roster := domain.SlotWasher{
			WasherID:       b.WasherID,
			AvailabilityID: b.ID,
			Remaining:      b.RemainingCapacity(),
		}
		if w, ok := washers[b.WasherID]; ok {
			roster.Name = w.DisplayName
			roster.Phone = w.Phone
		}
		slot.Washers = append(slot.Washers, roster)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].StartTime != slots[j].StartTime {
			return slots[i].StartTime < slots[j].StartTime
		}
		return slots[i].EndTime < slots[j].EndTime
	})

	return slots
}

// washerIDs возвращает уникальные ID мойщиков блоков со свободными местами
func washerIDs(blocks []*domain.AvailabilityBlock) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(blocks))
	ids := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		if !b.HasCapacity() {
			continue
		}
		if _, ok := seen[b.WasherID]; ok {
			continue
		}
		seen[b.WasherID] = struct{}{}
		ids = append(ids, b.WasherID)
	}
	return ids
}
