package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/payroll"
	"github.com/sakthi-mills/hr-backend-go/internal/handler/http/response"
	payrollService "github.com/sakthi-mills/hr-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	AssetDeductionPreview(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payrollService.Service
}

func NewPayrollHandler(payrollSvc payrollService.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollSvc}
}

func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) AssetDeductionPreview(w http.ResponseWriter, r *http.Request) {
	var req payroll.DeductionPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.AssetDeductionPreview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
