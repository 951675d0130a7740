package get_slot_config

import (
	"errors"
	"net/http"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/settings"
)

const msgForbidden = "доступ запрещен"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/settings/timeslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	result, err := h.service.GetSlotConfig(r.Context(), requester)
	if err != nil {
		if errors.Is(err, settings.ErrAccessDenied) {
			h.logger.Warn("GET /admin/settings/timeslots - Access denied: user=%s", requester)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/settings/timeslots - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
