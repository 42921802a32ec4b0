// Package get_services отдает список услуг для выпадающего списка формы
package get_services

import (
	"net/http"

	"github.com/asavich/GymClub-BookingService/internal/api/handlers"
)

// ServicesResponse HTTP модель списка услуг
type ServicesResponse struct {
	Services []string `json:"services"`
}

type Handler struct {
	services []string
}

func NewHandler(services []string) *Handler {
	return &Handler{services: services}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ServicesResponse{Services: h.services})
}
