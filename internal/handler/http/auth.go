package http

import (
	"encoding/json"
	"net/http"

	"github.com/sakthi-mills/hr-backend-go/internal/domain/auth"
	"github.com/sakthi-mills/hr-backend-go/internal/handler/http/response"
	authService "github.com/sakthi-mills/hr-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService authService.Service
}

func NewAuthHandler(authSvc authService.Service) AuthHandler {
	return &authHandlerImpl{authService: authSvc}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
