package update_lab

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs/models"
)

const (
	msgInvalidLabID       = "некорректный ID лаборатории"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "лаборатория не найдена"
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

// Handle PUT /api/v1/admin/labs/{labId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	vars := mux.Vars(r)
	labID, err := strconv.ParseInt(vars["labId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/labs/{id} - Invalid lab ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLabID)
		return
	}

	var req models.UpdateLabRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/labs/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester = requester

	result, err := h.service.Update(r.Context(), labID, &req)
	if err != nil {
		switch {
		case errors.Is(err, labs.ErrAccessDenied):
			h.logger.Warn("PUT /admin/labs/{id} - Access denied: user=%s", requester)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, labs.ErrLabNotFound):
			h.logger.Warn("PUT /admin/labs/{id} - Lab not found: lab_id=%d", labID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, labs.ErrInvalidInput):
			h.logger.Warn("PUT /admin/labs/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /admin/labs/{id} - Failed to update lab: lab_id=%d, error=%v", labID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/labs/{id} - Lab updated: lab_id=%d, user=%s", labID, requester)
	handlers.RespondJSON(w, http.StatusOK, result)
}
