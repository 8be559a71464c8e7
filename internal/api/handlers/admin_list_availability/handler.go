package admin_list_availability

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/internal/service/washes"
	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
)

const (
	msgInvalidDate        = "dates must be in YYYY-MM-DD format"
	msgInvalidRange       = "endDate must not be before startDate"
	msgAvailabilityFailed = "failed to load availability"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability
// Query params (все опциональны): zip, startDate, endDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &models.ListAvailabilityRequest{}

	if zip := strings.TrimSpace(q.Get("zip")); zip != "" {
		req.Zip = &zip
	}

	var err error
	if req.StartDate, err = parseOptionalDate(q.Get("startDate")); err != nil {
		h.logger.Warn("GET /admin/availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		return
	}
	if req.EndDate, err = parseOptionalDate(q.Get("endDate")); err != nil {
		h.logger.Warn("GET /admin/availability - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.service.ListAvailability(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, washes.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidRange)

		case errors.Is(err, washes.ErrAvailabilityQueryFailed):
			h.logger.Error("GET /admin/availability - Availability query failed: error=%v", err)
			handlers.RespondStoreError(w, handlers.KindAvailabilityRangeFailed, msgAvailabilityFailed, err)

		default:
			h.logger.Error("GET /admin/availability - Failed to list availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/availability - Availability retrieved successfully: count=%d", len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
