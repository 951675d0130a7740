package delete_lab

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs"
)

const (
	msgInvalidLabID = "некорректный ID лаборатории"
	msgForbidden    = "доступ запрещен"
	msgNotFound     = "лаборатория не найдена"
	msgLabInUse     = "к лаборатории привязаны пользователи"
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

// Handle DELETE /api/v1/admin/labs/{labId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	vars := mux.Vars(r)
	labID, err := strconv.ParseInt(vars["labId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/labs/{id} - Invalid lab ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLabID)
		return
	}

	err = h.service.Delete(r.Context(), labID, requester)
	if err != nil {
		switch {
		case errors.Is(err, labs.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/labs/{id} - Access denied: user=%s", requester)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, labs.ErrLabNotFound):
			h.logger.Warn("DELETE /admin/labs/{id} - Lab not found: lab_id=%d", labID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, labs.ErrLabInUse):
			h.logger.Warn("DELETE /admin/labs/{id} - Lab in use: lab_id=%d", labID)
			handlers.RespondError(w, http.StatusConflict, msgLabInUse)

		default:
			h.logger.Error("DELETE /admin/labs/{id} - Failed to delete lab: lab_id=%d, error=%v", labID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/labs/{id} - Lab deleted: lab_id=%d, user=%s", labID, requester)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
