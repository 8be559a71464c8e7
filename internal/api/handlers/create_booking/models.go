package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	washModels "github.com/m04kA/SMC-WashService/internal/service/washes/models"
	createBooking "github.com/m04kA/SMC-WashService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

var (
	errInvalidDate     = errors.New("invalid service_date")
	errInvalidTime     = errors.New("invalid time")
	errInvalidWasherID = errors.New("invalid washer_id")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SharetribeUserID    string  `json:"sharetribe_user_id"`
	Zip                 string  `json:"zip"`
	ServiceDate         string  `json:"service_date"` // "2026-09-14"
	StartTime           string  `json:"start_time"`   // "10:00" или "10:00:00"
	EndTime             string  `json:"end_time"`
	VehicleCount        int     `json:"vehicle_count" validate:"min=0,max=10"`
	Mode                string  `json:"mode"` // auto | specific
	WasherID            *string `json:"washer_id,omitempty"`
	SpecialInstructions *string `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Wash       washModels.WashResponse `json:"wash"`
	Assignment AssignmentResponse      `json:"assignment"`
}

type AssignmentResponse struct {
	WasherID       string `json:"washer_id"`
	AvailabilityID int64  `json:"availability_id"`
	Mode           string `json:"mode"`
}

// missingRequired проверяет обязательные поля до парсинга
func (r *CreateBookingRequest) missingRequired() bool {
	return strings.TrimSpace(r.SharetribeUserID) == "" || strings.TrimSpace(r.Zip) == "" ||
		strings.TrimSpace(r.ServiceDate) == "" || strings.TrimSpace(r.StartTime) == "" ||
		strings.TrimSpace(r.EndTime) == ""
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(r.ServiceDate))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(r.StartTime))
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", errInvalidTime, err)
	}
	end, err := types.NewTimeStringFromString(strings.TrimSpace(r.EndTime))
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", errInvalidTime, err)
	}

	req := &createBooking.Request{
		SharetribeUserID:    r.SharetribeUserID,
		Zip:                 r.Zip,
		ServiceDate:         date,
		StartTime:           start,
		EndTime:             end,
		VehicleCount:        r.VehicleCount,
		Mode:                domain.ParseAssignmentMode(strings.TrimSpace(r.Mode)),
		SpecialInstructions: r.SpecialInstructions,
	}

	if r.WasherID != nil && strings.TrimSpace(*r.WasherID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*r.WasherID))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidWasherID, err)
		}
		req.WasherID = &id
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Wash: washModels.FromDomainWash(resp.Wash),
		Assignment: AssignmentResponse{
			WasherID:       resp.Assignment.WasherID.String(),
			AvailabilityID: resp.Assignment.AvailabilityID,
			Mode:           string(resp.Assignment.Mode),
		},
	}
}
