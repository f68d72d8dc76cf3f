package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corehr/hrms-backend-go/internal/domain/attendance"
	"github.com/corehr/hrms-backend-go/internal/domain/auth"
	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/domain/payroll"
	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrAccountNotActive, http.StatusUnauthorized},
		{employee.ErrProfileNotFound, http.StatusNotFound},
		{employee.ErrPANExists, http.StatusConflict},
		{attendance.ErrDuplicateRecord, http.StatusConflict},
		{attendance.ErrRecordLocked, http.StatusForbidden},
		{payroll.ErrDuplicatePeriod, http.StatusConflict},
		{payroll.ErrNoBaseSalary, http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)
		assert.Equal(t, c.want, rec.Code, "error %v", c.err)

		var envelope Envelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.False(t, envelope.Success)
		assert.NotEmpty(t, envelope.Message)
	}
}

func TestHandleErrorWrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("harmless wrapper: "+payroll.ErrNoBaseSalary.Error()))
	// a message lookalike is not the sentinel
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	wrapped := wrap(payroll.ErrNoBaseSalary)
	HandleError(rec, wrapped)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func wrap(err error) error {
	return errors.Join(errors.New("employee EMP00001"), err)
}

func TestHandleErrorValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "pan", Message: "pan must match AAAAA9999A"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.False(t, envelope.Success)

	details, ok := envelope.Errors.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "pan")
}

func TestHandleErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: password authentication failed for user postgres"))

	var envelope Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.NotContains(t, envelope.Message, "postgres")
}
