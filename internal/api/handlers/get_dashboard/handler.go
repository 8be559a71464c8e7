package get_dashboard

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashService/internal/api/handlers"
	"github.com/m04kA/SMC-WashService/internal/service/washes"
)

const (
	msgMissingUserID = "userId is required"
	msgWashesFailed  = "failed to load dashboard data"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(mux.Vars(r)["userId"])
	if userID == "" {
		h.logger.Warn("GET /users/{id}/dashboard - Missing user ID")
		handlers.RespondBadRequest(w, handlers.KindMissingUserID, msgMissingUserID)
		return
	}

	dashboard, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, washes.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.KindMissingUserID, msgMissingUserID)

		case errors.Is(err, washes.ErrWashesQueryFailed):
			h.logger.Error("GET /users/{id}/dashboard - Washes query failed: user_id=%s, error=%v", userID, err)
			handlers.RespondStoreError(w, handlers.KindWashesQueryFailed, msgWashesFailed, err)

		default:
			h.logger.Error("GET /users/{id}/dashboard - Failed to get dashboard: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/dashboard - Dashboard retrieved successfully: user_id=%s, upcoming=%d, past=%d",
		userID, len(dashboard.Upcoming), len(dashboard.Past))
	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
