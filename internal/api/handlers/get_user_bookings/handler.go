package get_user_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
)

const msgForbidden = "можно смотреть только свои бронирования"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{username}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester := middleware.UsernameFromContext(r.Context())

	vars := mux.Vars(r)
	username := vars["username"]

	// История бронирований видна только самому пользователю
	if username != requester {
		h.logger.Warn("GET /users/{username}/bookings - Access denied: requester=%s, target=%s",
			requester, username)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), username)
	if err != nil {
		h.logger.Error("GET /users/{username}/bookings - Failed to get bookings: user=%s, error=%v",
			username, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
