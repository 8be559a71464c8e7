package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// Request модель запроса на бронирование мойки
type Request struct {
	SharetribeUserID    string
	Zip                 string
	ServiceDate         time.Time        // Дата без времени
	StartTime           types.TimeString // HH:MM:SS
	EndTime             types.TimeString // HH:MM:SS
	VehicleCount        int              // 0 означает значение по умолчанию
	Mode                domain.AssignmentMode
	WasherID            *uuid.UUID // Обязателен для specific
	SpecialInstructions *string
}

// Response созданная мойка и то, как был выбран мойщик
type Response struct {
	Wash       *domain.Wash
	Assignment domain.Assignment
}
