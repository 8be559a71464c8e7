package get_schedule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	"github.com/m04kA/SMC-WashService/internal/service/schedule"
)

const (
	msgInvalidWasherID   = "washerId must be a UUID"
	msgInvalidMonth      = "month must be in YYYY-MM format"
	msgDefaultWeekFailed = "failed to load default week"
	msgExceptionsFailed  = "failed to load schedule exceptions"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/washers/{washerId}/schedule?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	washerID, err := uuid.Parse(mux.Vars(r)["washerId"])
	if err != nil {
		h.logger.Warn("GET /staff/washers/{id}/schedule - Invalid washer ID: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidWasherID, msgInvalidWasherID)
		return
	}

	month := r.URL.Query().Get("month")

	result, err := h.service.GetMonth(r.Context(), washerID, month)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidMonth):
			h.logger.Warn("GET /staff/washers/{id}/schedule - Invalid month: washer_id=%s, month=%q", washerID, month)
			handlers.RespondBadRequest(w, handlers.KindInvalidMonth, msgInvalidMonth)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /staff/washers/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidWasherID, msgInvalidWasherID)

		case errors.Is(err, schedule.ErrDefaultWeekQueryFailed):
			h.logger.Error("GET /staff/washers/{id}/schedule - Default week query failed: washer_id=%s, error=%v", washerID, err)
			handlers.RespondStoreError(w, handlers.KindDefaultWeekQueryFailed, msgDefaultWeekFailed, err)

		case errors.Is(err, schedule.ErrExceptionsQueryFailed):
			h.logger.Error("GET /staff/washers/{id}/schedule - Exceptions query failed: washer_id=%s, error=%v", washerID, err)
			handlers.RespondStoreError(w, handlers.KindExceptionsQueryFailed, msgExceptionsFailed, err)

		default:
			h.logger.Error("GET /staff/washers/{id}/schedule - Failed to get schedule: washer_id=%s, error=%v", washerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/washers/{id}/schedule - Schedule retrieved successfully: washer_id=%s, month=%s",
		washerID, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
