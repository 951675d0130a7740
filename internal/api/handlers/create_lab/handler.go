package create_lab

import (
	"errors"
	"net/http"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service LabService
	logger  Logger
}

func NewHandler(service LabService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/labs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	var req models.CreateLabRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/labs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester = requester

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, labs.ErrAccessDenied):
			h.logger.Warn("POST /admin/labs - Access denied: user=%s", requester)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, labs.ErrInvalidInput):
			h.logger.Warn("POST /admin/labs - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/labs - Failed to create lab: user=%s, error=%v", requester, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/labs - Lab created: lab_id=%d, user=%s", result.ID, requester)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
