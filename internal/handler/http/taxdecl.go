package http

import (
	"encoding/json"
	"net/http"

	"github.com/corehr/hrms-backend-go/internal/domain/taxdecl"
	"github.com/corehr/hrms-backend-go/internal/handler/http/response"
)

type TaxDeclarationHandler interface {
	CreateDeclaration(w http.ResponseWriter, r *http.Request)
	GetDeclaration(w http.ResponseWriter, r *http.Request)
	ListDeclarations(w http.ResponseWriter, r *http.Request)
	UpdateDeclaration(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	ImportDeclarations(w http.ResponseWriter, r *http.Request)
	ExportDeclarations(w http.ResponseWriter, r *http.Request)
}

type TaxDeclarationHandlerImpl struct {
	declarationService taxdecl.DeclarationService
}

func NewTaxDeclarationHandler(declarationService taxdecl.DeclarationService) TaxDeclarationHandler {
	return &TaxDeclarationHandlerImpl{
		declarationService: declarationService,
	}
}

// CreateDeclaration implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) CreateDeclaration(w http.ResponseWriter, r *http.Request) {
	var req taxdecl.CreateDeclarationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.declarationService.CreateDeclaration(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// GetDeclaration implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) GetDeclaration(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid declaration id", nil)
		return
	}

	result, err := h.declarationService.GetDeclaration(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// declarationFilter builds the list filter from query parameters.
func declarationFilter(r *http.Request) taxdecl.DeclarationFilter {
	return taxdecl.DeclarationFilter{
		FinancialYear: queryString(r, "financial_year"),
		EmployeeID:    queryInt64(r, "employee_id"),
		Status:        queryString(r, "status"),
	}
}

// ListDeclarations implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) ListDeclarations(w http.ResponseWriter, r *http.Request) {
	results, err := h.declarationService.ListDeclarations(r.Context(), declarationFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithCount(w, results, len(results))
}

// UpdateDeclaration implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) UpdateDeclaration(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid declaration id", nil)
		return
	}

	var req taxdecl.UpdateDeclarationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.declarationService.UpdateDeclaration(r.Context(), id, req, accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	accountID, _, err := identity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req taxdecl.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	affected, err := h.declarationService.Approve(r.Context(), req, accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Declarations reviewed", map[string]int64{"updated": affected})
}

// ImportDeclarations implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) ImportDeclarations(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	imported, err := h.declarationService.ImportDeclarations(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Declarations imported successfully", map[string]int{"imported": imported})
}

// ExportDeclarations implements TaxDeclarationHandler.
func (h *TaxDeclarationHandlerImpl) ExportDeclarations(w http.ResponseWriter, r *http.Request) {
	body, err := h.declarationService.ExportDeclarations(r.Context(), declarationFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "tax_declarations.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
}
