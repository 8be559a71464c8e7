package create_booking

import (
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// pickSpecific возвращает блок выбранного мойщика среди кандидатов
func pickSpecific(candidates []*domain.AvailabilityBlock, washerID uuid.UUID) *domain.AvailabilityBlock {
	for _, b := range candidates {
		if b.WasherID == washerID {
			return b
		}
	}
	return nil
}

// pickFair выбирает мойщика с наименьшим числом завершенных моек за месяц.
// При равенстве побеждает меньший washer_id в строковом виде.
// Мойщики без записей в completed считаются с нулем.
func pickFair(candidates []*domain.AvailabilityBlock, completed map[uuid.UUID]int) *domain.AvailabilityBlock {
	if len(candidates) == 0 {
		return nil
	}

	ordered := make([]*domain.AvailabilityBlock, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := completed[ordered[i].WasherID], completed[ordered[j].WasherID]
		if ci != cj {
			return ci < cj
		}
		return ordered[i].WasherID.String() < ordered[j].WasherID.String()
	})

	return ordered[0]
}

func candidateWasherIDs(candidates []*domain.AvailabilityBlock) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(candidates))
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, b := range candidates {
		if _, ok := seen[b.WasherID]; ok {
			continue
		}
		seen[b.WasherID] = struct{}{}
		ids = append(ids, b.WasherID)
	}
	return ids
}
