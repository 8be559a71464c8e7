package admin_create_wash

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	"github.com/m04kA/SMC-WashService/internal/service/washes"
	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgMissingRequiredFields = "sharetribe_user_id, scheduled_start and location_id are required"
	msgInvalidStatus         = "status must be one of scheduled, completed, cancelled, no_show"
	msgInvalidInput          = "invalid wash"
	msgCreateWashFailed      = "failed to create wash"
)

type Handler struct {
	service WashService
	logger  Logger
}

func NewHandler(service WashService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/washes
// Создает мойку без проверки вместимости блоков.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWashRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/washes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequestBody, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /admin/washes - Validation failed: %v", err)
		handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindMissingRequiredFields,
			msgMissingRequiredFields, handlers.ValidationDetails(err))
		return
	}

	result, err := h.service.CreateAdminWash(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, washes.ErrMissingRequiredFields):
			handlers.RespondBadRequest(w, handlers.KindMissingRequiredFields, msgMissingRequiredFields)

		case errors.Is(err, washes.ErrInvalidStatus):
			handlers.RespondBadRequest(w, handlers.KindInvalidInput, msgInvalidStatus)

		case errors.Is(err, washes.ErrInvalidInput):
			handlers.RespondErrorWithDetails(w, http.StatusBadRequest, handlers.KindInvalidInput, msgInvalidInput, err.Error())

		case errors.Is(err, washes.ErrCreateWashFailed):
			h.logger.Error("POST /admin/washes - Create wash failed: error=%v", err)
			handlers.RespondStoreError(w, handlers.KindCreateWashFailed, msgCreateWashFailed, err)

		default:
			h.logger.Error("POST /admin/washes - Failed to create wash: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/washes - Wash created successfully: wash_id=%d, user=%s",
		result.Wash.ID, result.Wash.SharetribeUserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
