package get_availability

import (
	"net/http"
	"strings"
)

// DayHandler обработчик слотов одного дня
type DayHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// RangeHandler обработчик сводки по периоду
type RangeHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	day DayHandler
	rng RangeHandler
}

func NewHandler(day DayHandler, rng RangeHandler) *Handler {
	return &Handler{
		day: day,
		rng: rng,
	}
}

// Handle GET /api/v1/availability
// С параметром date отдает слоты дня, иначе сводку по startDate..endDate.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(r.URL.Query().Get("date")) != "" {
		h.day.Handle(w, r)
		return
	}
	h.rng.Handle(w, r)
}
