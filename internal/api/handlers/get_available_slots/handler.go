package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-WashService/internal/usecase/get_available_slots"
)

const (
	msgMissingZip         = "zip is required"
	msgMissingDate        = "date is required"
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgAvailabilityFailed = "failed to load availability for the day"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: zip (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zip := strings.TrimSpace(r.URL.Query().Get("zip"))
	if zip == "" {
		h.logger.Warn("GET /availability/slots - Missing zip")
		handlers.RespondBadRequest(w, handlers.KindMissingZip, msgMissingZip)
		return
	}

	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date")
		handlers.RespondBadRequest(w, handlers.KindMissingDate, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(zip, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrMissingZip):
			handlers.RespondBadRequest(w, handlers.KindMissingZip, msgMissingZip)

		case errors.Is(err, getAvailableSlots.ErrMissingDate):
			handlers.RespondBadRequest(w, handlers.KindMissingDate, msgMissingDate)

		case errors.Is(err, getAvailableSlots.ErrAvailabilityQueryFailed):
			h.logger.Error("GET /availability/slots - Availability query failed: zip=%s, date=%s, error=%v", zip, dateStr, err)
			handlers.RespondStoreError(w, handlers.KindAvailabilityDayFailed, msgAvailabilityFailed, err)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: zip=%s, date=%s, error=%v", zip, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved successfully: zip=%s, date=%s, slots_count=%d",
		zip, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
