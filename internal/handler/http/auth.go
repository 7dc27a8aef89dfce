package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leavetrack/leavetrack-backend-go/internal/domain/auth"
	"github.com/leavetrack/leavetrack-backend-go/internal/handler/http/response"
	"github.com/leavetrack/leavetrack-backend-go/internal/pkg/jwt"
	authService "github.com/leavetrack/leavetrack-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.Service
	jwtService  jwt.Service
}

func NewAuthHandler(service *authService.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{authService: service, jwtService: jwtService}
}

func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresAt))
	response.Created(w, "Registered successfully", tokens)
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresAt))
	response.Success(w, tokens)
}

func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	profile, err := h.authService.Me(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
