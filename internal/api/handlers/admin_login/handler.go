package admin_login

import (
	"errors"
	"net/http"

	"github.com/asavich/GymClub-BookingService/internal/api/handlers"
	"github.com/asavich/GymClub-BookingService/internal/service/adminauth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingPassword    = "password is required"
	msgWrongPassword      = "wrong password"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	authService AdminAuthService
	logger      Logger
}

func NewHandler(authService AdminAuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingPassword)
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, adminauth.ErrWrongPassword) {
			h.logger.Warn("POST /admin/login - Wrong password from %s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgWrongPassword)
			return
		}
		h.logger.Error("POST /admin/login - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin session issued")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
