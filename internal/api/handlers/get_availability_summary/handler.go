package get_availability_summary

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	"github.com/m04kA/SMC-WashService/internal/domain"
	getAvailabilitySummary "github.com/m04kA/SMC-WashService/internal/usecase/get_availability_summary"
)

const (
	msgMissingZip         = "zip is required"
	msgMissingDate        = "startDate and endDate are required"
	msgInvalidDate        = "dates must be in YYYY-MM-DD format"
	msgInvalidRange       = "endDate must not be before startDate and the range must not exceed 92 days"
	msgAvailabilityFailed = "failed to load availability for the range"
)

type Handler struct {
	useCase GetAvailabilitySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilitySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/summary
// Query params: zip, startDate, endDate (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	zip := strings.TrimSpace(q.Get("zip"))
	if zip == "" {
		h.logger.Warn("GET /availability/summary - Missing zip")
		handlers.RespondBadRequest(w, handlers.KindMissingZip, msgMissingZip)
		return
	}

	startStr, endStr := strings.TrimSpace(q.Get("startDate")), strings.TrimSpace(q.Get("endDate"))
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability/summary - Missing date range")
		handlers.RespondBadRequest(w, handlers.KindMissingDate, msgMissingDate)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /availability/summary - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		return
	}
	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /availability/summary - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailabilitySummary.Request{
		Zip:       zip,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilitySummary.ErrInvalidRange):
			h.logger.Warn("GET /availability/summary - Invalid range: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidRange)

		case errors.Is(err, getAvailabilitySummary.ErrMissingZip):
			handlers.RespondBadRequest(w, handlers.KindMissingZip, msgMissingZip)

		case errors.Is(err, getAvailabilitySummary.ErrMissingDate):
			handlers.RespondBadRequest(w, handlers.KindMissingDate, msgMissingDate)

		case errors.Is(err, getAvailabilitySummary.ErrAvailabilityQueryFailed):
			h.logger.Error("GET /availability/summary - Availability query failed: zip=%s, error=%v", zip, err)
			handlers.RespondStoreError(w, handlers.KindAvailabilityRangeFailed, msgAvailabilityFailed, err)

		default:
			h.logger.Error("GET /availability/summary - Failed to get summary: zip=%s, error=%v", zip, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/summary - Summary retrieved successfully: zip=%s, %s..%s, days=%d",
		zip, startStr, endStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
