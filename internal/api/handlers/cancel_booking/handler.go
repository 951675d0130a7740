package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/service/bookings"
	"github.com/kitty100176/nmr-booking-system/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "можно отменять только свои бронирования"
	msgPastTimeSlot     = "временной слот уже прошел"
)

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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := middleware.UsernameFromContext(r.Context())

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{Username: username})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied), errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, user=%s", bookingID, username)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrPastTimeSlot):
			h.logger.Warn("DELETE /bookings/{id} - Past time slot: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgPastTimeSlot)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d, user=%s", bookingID, username)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
