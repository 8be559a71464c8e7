package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	"github.com/m04kA/SMC-WashService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-WashService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgMissingRequiredFields = "sharetribe_user_id, zip, service_date, start_time and end_time are required"
	msgMissingWasherID       = "washer_id is required when mode is specific"
	msgInvalidWasherID       = "washer_id must be a UUID"
	msgInvalidDate           = "service_date must be in YYYY-MM-DD format"
	msgInvalidTime           = "start_time and end_time must be in HH:MM or HH:MM:SS format"
	msgInvalidInput          = "invalid booking request"
	msgNoCredits             = "no subscription credits remaining"
	msgNoCapacity            = "no washers available for this time slot"
	msgWasherNotAvailable    = "selected washer is not available for this time slot"
	msgCapacityFull          = "the time slot filled up, please pick another one"
	msgAvailabilityNotFound  = "the time slot is no longer available"
	msgAvailabilityLookup    = "failed to look up availability"
	msgReserveFailed         = "failed to reserve the time slot"
	msgCreateWashFailed      = "failed to create wash"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequestBody, msgInvalidRequestBody)
		return
	}

	// Пользователь из тела, иначе из X-User-ID
	if req.SharetribeUserID == "" {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			req.SharetribeUserID = userID
		}
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindInvalidRequestBody,
			msgInvalidRequestBody, handlers.ValidationDetails(err))
		return
	}

	if req.missingRequired() {
		h.logger.Warn("POST /bookings - Missing required fields: user=%q, zip=%q", req.SharetribeUserID, req.Zip)
		handlers.RespondBadRequest(w, handlers.KindMissingRequiredFields, msgMissingRequiredFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)
		case errors.Is(err, errInvalidWasherID):
			handlers.RespondBadRequest(w, handlers.KindInvalidWasherID, msgInvalidWasherID)
		default:
			handlers.RespondBadRequest(w, handlers.KindInvalidTime, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingRequiredFields):
			handlers.RespondBadRequest(w, handlers.KindMissingRequiredFields, msgMissingRequiredFields)

		case errors.Is(err, createBooking.ErrMissingWasherID):
			h.logger.Warn("POST /bookings - Missing washer ID: user=%s", req.SharetribeUserID)
			handlers.RespondBadRequest(w, handlers.KindMissingWasherID, msgMissingWasherID)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user=%s, error=%v", req.SharetribeUserID, err)
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindInvalidInput, msgInvalidInput, err.Error())

		case errors.Is(err, createBooking.ErrNoCredits):
			h.logger.Warn("POST /bookings - No credits: user=%s", req.SharetribeUserID)
			handlers.RespondConflict(w, handlers.KindNoCredits, msgNoCredits)

		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: zip=%s, date=%s, window=%s-%s",
				req.Zip, req.ServiceDate, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, handlers.KindNoCapacity, msgNoCapacity)

		case errors.Is(err, createBooking.ErrWasherNotAvailable):
			h.logger.Warn("POST /bookings - Washer not available: washer_id=%v", useCaseReq.WasherID)
			handlers.RespondConflict(w, handlers.KindWasherNotAvailable, msgWasherNotAvailable)

		case errors.Is(err, createBooking.ErrCapacityFull):
			h.logger.Warn("POST /bookings - Capacity full: user=%s", req.SharetribeUserID)
			handlers.RespondConflict(w, handlers.KindCapacityFull, msgCapacityFull)

		case errors.Is(err, createBooking.ErrAvailabilityNotFound):
			h.logger.Warn("POST /bookings - Availability not found: user=%s", req.SharetribeUserID)
			handlers.RespondConflict(w, handlers.KindAvailabilityNotFound, msgAvailabilityNotFound)

		case errors.Is(err, createBooking.ErrAvailabilityLookupFailed):
			h.logger.Error("POST /bookings - Availability lookup failed: error=%v", err)
			handlers.RespondStoreError(w, handlers.KindAvailabilityLookupFailed, msgAvailabilityLookup, err)

		case errors.Is(err, createBooking.ErrReserveFailed):
			h.logger.Error("POST /bookings - Reserve failed: error=%v", err)
			handlers.RespondStoreError(w, handlers.KindReserveFailed, msgReserveFailed, err)

		case errors.Is(err, createBooking.ErrCreateWashFailed):
			h.logger.Error("POST /bookings - Create wash failed: error=%v", err)
			handlers.RespondStoreError(w, handlers.KindCreateWashFailed, msgCreateWashFailed, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", req.SharetribeUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: wash_id=%d, washer_id=%s, availability_id=%d, mode=%s",
		result.Wash.ID, result.Assignment.WasherID, result.Assignment.AvailabilityID, result.Assignment.Mode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
