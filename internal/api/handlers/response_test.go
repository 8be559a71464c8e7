package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondStoreError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondStoreError(rec, KindReserveFailed, "failed to reserve availability", errors.New("deadlock detected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"reserve_failed","message":"failed to reserve availability","details":"deadlock detected"}`,
		rec.Body.String())
}

func TestRespondError_OmitsEmptyDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, KindNoCapacity, "no washers available")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"no_capacity","message":"no washers available"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Zip string `json:"zip"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"zip":"38655","extra":1}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "38655", v.Zip)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"zip":`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		UserID string `json:"user_id" validate:"required"`
		Count  int    `json:"count" validate:"omitempty,min=1,max=10"`
	}

	require.NoError(t, ValidateStruct(payload{UserID: "u"}))

	err := ValidateStruct(payload{Count: 11})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"UserID: required", "Count: max"}, ValidationDetails(err))
}
