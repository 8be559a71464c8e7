package admin_create_wash

import (
	"context"

	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
)

type WashService interface {
	CreateAdminWash(ctx context.Context, req *models.CreateWashRequest) (*models.CreateWashResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
