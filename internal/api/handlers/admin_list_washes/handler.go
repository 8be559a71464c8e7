package admin_list_washes

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
)

const msgWashesFailed = "failed to load washes"

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

// Handle GET /api/v1/admin/washes?limit=
// Некорректный limit трактуется как значение по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.ListWashes(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /admin/washes - Failed to list washes: error=%v", err)
		handlers.RespondStoreError(w, handlers.KindWashesQueryFailed, msgWashesFailed, err)
		return
	}

	h.logger.Info("GET /admin/washes - Washes retrieved successfully: count=%d", len(result.Washes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
