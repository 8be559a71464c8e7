package admin_list_availability

import (
	"context"

	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
)

type AvailabilityService interface {
	ListAvailability(ctx context.Context, req *models.ListAvailabilityRequest) (*models.AvailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
