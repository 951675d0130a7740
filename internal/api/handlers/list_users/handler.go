package list_users

import (
	"errors"
	"net/http"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/users"
)

const msgForbidden = "доступ запрещен"

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	result, err := h.service.List(r.Context(), requester)
	if err != nil {
		if errors.Is(err, users.ErrAccessDenied) {
			h.logger.Warn("GET /admin/users - Access denied: user=%s", requester)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
