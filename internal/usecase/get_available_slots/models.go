package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Zip  string    // ZIP код района
	Date time.Time // Дата (без времени)
}

// Response модель ответа со слотами дня
type Response struct {
	Zip   string
	Date  time.Time
	Slots []domain.AvailableSlot // упорядочены по началу окна
}
