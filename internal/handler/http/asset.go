package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/asset"
	"github.com/sakthi-mills/hr-backend-go/internal/domain/assignment"
	"github.com/sakthi-mills/hr-backend-go/internal/handler/http/response"
	assetService "github.com/sakthi-mills/hr-backend-go/internal/service/asset"
	assignmentService "github.com/sakthi-mills/hr-backend-go/internal/service/assignment"
)

type AssetHandler interface {
	// Assets
	List(w http.ResponseWriter, r *http.Request)
	CreateAsset(w http.ResponseWriter, r *http.Request)
	UpdateAsset(w http.ResponseWriter, r *http.Request)

	// Assignments
	CreateAssignment(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
}

type assetHandlerImpl struct {
	assetService      assetService.Service
	assignmentService assignmentService.Service
}

func NewAssetHandler(assetSvc assetService.Service, assignmentSvc assignmentService.Service) AssetHandler {
	return &assetHandlerImpl{assetService: assetSvc, assignmentService: assignmentSvc}
}

// ========== ASSETS ==========

// List returns the whole asset administration payload: assets, employees and
// assignments with references resolved.
func (h *assetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.assignmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *assetHandlerImpl) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req asset.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.assetService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset created", result)
}

func (h *assetHandlerImpl) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	var req asset.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.assetService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== ASSIGNMENTS ==========

func (h *assetHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset assigned", result)
}

func (h *assetHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	var req assignment.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	if err := h.assignmentService.Edit(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *assetHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.assignmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset assignment deleted successfully", nil)
}
