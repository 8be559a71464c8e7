package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WashService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-WashService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Zip   string          `json:"zip"`
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot окно с суммарной вместимостью всех мойщиков
type AvailableSlot struct {
	StartTime              string       `json:"start_time"`
	EndTime                string       `json:"end_time"`
	OpenBlocks             int          `json:"open_blocks"`
	TotalCapacityRemaining int          `json:"total_capacity_remaining"`
	AvailabilityIDs        []int64      `json:"availability_ids"`
	Washers                []SlotWasher `json:"washers"`
}

type SlotWasher struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	AvailabilityID int64  `json:"availability_id"`
	Remaining      int    `json:"remaining"`
}

// ToUseCaseRequest формирует запрос use case с парсингом даты
func ToUseCaseRequest(zip, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Zip:  zip,
		Date: date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		washers := make([]SlotWasher, len(slot.Washers))
		for j, sw := range slot.Washers {
			washers[j] = SlotWasher{
				ID:             sw.WasherID.String(),
				Name:           sw.Name,
				Phone:          sw.Phone,
				AvailabilityID: sw.AvailabilityID,
				Remaining:      sw.Remaining,
			}
		}

		slots[i] = AvailableSlot{
			StartTime:              slot.StartTime.String(),
			EndTime:                slot.EndTime.String(),
			OpenBlocks:             slot.OpenBlocks,
			TotalCapacityRemaining: slot.TotalCapacityRemaining,
			AvailabilityIDs:        slot.AvailabilityIDs,
			Washers:                washers,
		}
	}

	return &AvailableSlotsResponse{
		Zip:   resp.Zip,
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
