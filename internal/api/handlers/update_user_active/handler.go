package update_user_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/users"
	"github.com/kitty100176/nmr-booking-system/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingActiveFlag  = "не указан флаг active"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "пользователь не найден"
)

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

// Handle PATCH /api/v1/admin/users/{userId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/users/{id}/active - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/users/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Requester = requester

	err = h.service.UpdateActive(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/users/{id}/active - Missing active flag: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgMissingActiveFlag)

		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/users/{id}/active - Access denied: user=%s", requester)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PATCH /admin/users/{id}/active - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/users/{id}/active - Failed to update: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/users/{id}/active - Active flag updated: user_id=%d, active=%t, by=%s",
		userID, *req.Active, requester)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
