package save_schedule

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	saveSchedule "github.com/m04kA/SMC-WashService/internal/usecase/save_schedule"
)

const (
	msgInvalidWasherID    = "washerId must be a UUID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidMonth       = "month must be in YYYY-MM format"
	msgInvalidTime        = "times must be in HH:MM or HH:MM:SS format"
	msgInvalidDate        = "service_date must be in YYYY-MM-DD format"
	msgInvalidInput       = "invalid schedule"
	msgMinWeeklyHours     = "each week of the month must reach the minimum working hours"
	msgDefaultWeekUpsert  = "failed to save default week"
	msgDefaultWeekDelete  = "failed to remove days off from default week"
	msgExceptionsUpsert   = "failed to save schedule exceptions"
	msgAvailabilityDelete = "failed to clear availability for the month"
	msgAvailabilityInsert = "failed to create availability for the month"
)

type Handler struct {
	useCase SaveScheduleUseCase
	logger  Logger
}

func NewHandler(useCase SaveScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/staff/washers/{washerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "PUT /staff/washers/{id}/schedule", h.useCase.Execute)
}

// HandlePreview POST /api/v1/staff/washers/{washerId}/schedule/preview
// Считает расписание и проверку часов без сохранения.
func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "POST /staff/washers/{id}/schedule/preview", h.useCase.Preview)
}

type runFunc = func(ctx context.Context, req *saveSchedule.Request) (*saveSchedule.Response, error)

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, route string, run runFunc) {
	washerID, err := uuid.Parse(mux.Vars(r)["washerId"])
	if err != nil {
		h.logger.Warn("%s - Invalid washer ID: %v", route, err)
		handlers.RespondBadRequest(w, handlers.KindInvalidWasherID, msgInvalidWasherID)
		return
	}

	var req SaveScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequestBody, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindInvalidRequestBody,
			msgInvalidRequestBody, handlers.ValidationDetails(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(washerID)
	if err != nil {
		h.logger.Warn("%s - Failed to parse request: %v", route, err)
		if errors.Is(err, errInvalidDate) {
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, handlers.KindInvalidTime, msgInvalidTime)
		}
		return
	}

	result, err := run(r.Context(), useCaseReq)
	if err != nil {
		var hoursErr *saveSchedule.WeeklyHoursError
		switch {
		case errors.As(err, &hoursErr):
			h.logger.Warn("%s - Minimum weekly hours not met: washer_id=%s, weeks=%d", route, washerID, len(hoursErr.Failures))
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindMinWeeklyHoursFailed,
				msgMinWeeklyHours, FromFailures(hoursErr.Failures))

		case errors.Is(err, saveSchedule.ErrInvalidMonth):
			h.logger.Warn("%s - Invalid month: washer_id=%s, month=%q", route, washerID, req.Month)
			handlers.RespondBadRequest(w, handlers.KindInvalidMonth, msgInvalidMonth)

		case errors.Is(err, saveSchedule.ErrInvalidInput):
			h.logger.Warn("%s - Invalid schedule: washer_id=%s, error=%v", route, washerID, err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindInvalidInput, msgInvalidInput, err.Error())

		case errors.Is(err, saveSchedule.ErrDefaultWeekUpsertFailed):
			h.storeError(w, route, washerID, handlers.KindDefaultWeekUpsertFailed, msgDefaultWeekUpsert, err)

		case errors.Is(err, saveSchedule.ErrDefaultWeekDeleteFailed):
			h.storeError(w, route, washerID, handlers.KindDefaultWeekDeleteFailed, msgDefaultWeekDelete, err)

		case errors.Is(err, saveSchedule.ErrExceptionsUpsertFailed):
			h.storeError(w, route, washerID, handlers.KindExceptionsUpsertFailed, msgExceptionsUpsert, err)

		case errors.Is(err, saveSchedule.ErrAvailabilityDeleteFailed):
			h.storeError(w, route, washerID, handlers.KindAvailabilityDeleteFailed, msgAvailabilityDelete, err)

		case errors.Is(err, saveSchedule.ErrAvailabilityInsertFailed):
			h.storeError(w, route, washerID, handlers.KindAvailabilityInsertFailed, msgAvailabilityInsert, err)

		default:
			h.logger.Error("%s - Failed to save schedule: washer_id=%s, error=%v", route, washerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Done: washer_id=%s, ok=%t, persisted=%t, blocks=%d",
		route, washerID, result.OK, result.Persisted, result.BlocksCreated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) storeError(w http.ResponseWriter, route string, washerID uuid.UUID, kind, msg string, err error) {
	h.logger.Error("%s - Store failure: washer_id=%s, kind=%s, error=%v", route, washerID, kind, err)
	handlers.RespondStoreError(w, kind, msg, err)
}
