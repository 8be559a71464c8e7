package admin_list_washes

import (
	"context"

	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
)

type WashService interface {
	ListWashes(ctx context.Context, limit int) (*models.WashListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
