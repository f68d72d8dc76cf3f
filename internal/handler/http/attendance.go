package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/attendance"
	"github.com/corehr/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	BulkMark(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	ImportRecords(w http.ResponseWriter, r *http.Request)
	ExportRecords(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	recordService attendance.RecordService
}

func NewAttendanceHandler(recordService attendance.RecordService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		recordService: recordService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recordService.CheckIn(r.Context(), accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.recordService.CheckOut(r.Context(), accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkMark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BulkMark(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkMarkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.recordService.BulkMark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// Lock implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.LockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	affected, err := h.recordService.Lock(r.Context(), req, accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance locked", map[string]int64{"locked": affected})
}

// Unlock implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.LockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	affected, err := h.recordService.Unlock(r.Context(), req, accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance unlocked", map[string]int64{"unlocked": affected})
}

// recordFilter builds the month window filter from query parameters,
// defaulting to the current month.
func recordFilter(r *http.Request) attendance.RecordFilter {
	now := time.Now().UTC()
	return attendance.RecordFilter{
		Month:      queryInt(r, "month", int(now.Month())),
		Year:       queryInt(r, "year", now.Year()),
		EmployeeID: queryInt64(r, "employee_id"),
	}
}

// ListRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	results, err := h.recordService.ListRecords(r.Context(), recordFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// ImportRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ImportRecords(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	imported, err := h.recordService.ImportRecords(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance imported successfully", map[string]int{"imported": imported})
}

// ExportRecords implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ExportRecords(w http.ResponseWriter, r *http.Request) {
	body, err := h.recordService.ExportRecords(r.Context(), recordFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "attendance.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
}
