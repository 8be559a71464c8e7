package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Виды ошибок в теле ответа
const (
	KindMissingRequiredFields = "missing_required_fields"
	KindMissingZip            = "missing_zip"
	KindMissingDate           = "missing_date"
	KindMissingWasherID       = "missing_washer_id"
	KindMissingUserID         = "missing_user_id"
	KindInvalidMonth          = "invalid_month"
	KindInvalidDate           = "invalid_date"
	KindInvalidTime           = "invalid_time"
	KindInvalidRequestBody    = "invalid_request_body"
	KindInvalidWasherID       = "invalid_washer_id"
	KindInvalidInput          = "invalid_input"
	KindMinWeeklyHoursFailed  = "min_weekly_hours_failed"

	KindNoCredits            = "no_credits"
	KindNoCapacity           = "no_capacity"
	KindWasherNotAvailable   = "washer_not_available"
	KindCapacityFull         = "capacity_full"
	KindAvailabilityNotFound = "availability_not_found"

	KindDefaultWeekUpsertFailed  = "default_week_upsert_failed"
	KindDefaultWeekDeleteFailed  = "default_week_delete_failed"
	KindExceptionsUpsertFailed   = "exceptions_upsert_failed"
	KindAvailabilityDeleteFailed = "availability_delete_failed"
	KindAvailabilityInsertFailed = "availability_insert_failed"
	KindAvailabilityLookupFailed = "availability_lookup_failed"
	KindReserveFailed            = "reserve_failed"
	KindCreateWashFailed         = "create_wash_failed"
	KindDefaultWeekQueryFailed   = "default_week_query_failed"
	KindExceptionsQueryFailed    = "exceptions_query_failed"
	KindAvailabilityDayFailed    = "availability_day_failed"
	KindAvailabilityRangeFailed  = "availability_range_failed"
	KindWashesQueryFailed        = "washes_query_failed"
	KindInternalError            = "internal_error"
	KindUnauthorized             = "unauthorized"
)

const msgInternalError = "internal server error"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку указанного вида
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

// RespondErrorWithDetails отправляет ошибку с дополнительными данными
func RespondErrorWithDetails(w http.ResponseWriter, status int, kind, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: kind, Message: message, Details: details})
}

// RespondBadRequest отправляет 400
func RespondBadRequest(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusBadRequest, kind, message)
}

// RespondNotFound отправляет 404
func RespondNotFound(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusNotFound, kind, message)
}

// RespondConflict отправляет 409
func RespondConflict(w http.ResponseWriter, kind, message string) {
	RespondError(w, http.StatusConflict, kind, message)
}

// RespondUnauthorized отправляет 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, KindUnauthorized, message)
}

// RespondStoreError отправляет 500 с текстом ошибки хранилища в details
func RespondStoreError(w http.ResponseWriter, kind, message string, err error) {
	RespondErrorWithDetails(w, http.StatusInternalServerError, kind, message, err.Error())
}

// RespondInternalError отправляет 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternalError, msgInternalError)
}

// DecodeJSON декодирует тело запроса, неизвестные поля игнорируются
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidateStruct проверяет теги validate у структуры запроса
func ValidateStruct(v interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate.Struct(v)
}

// ValidationDetails превращает ошибки валидатора в список "поле: правило"
func ValidationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return details
}
