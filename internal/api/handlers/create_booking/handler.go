package create_booking

import (
	"errors"
	"net/http"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	createBooking "github.com/kitty100176/nmr-booking-system/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden          = "инструмент недоступен для этого пользователя"
	msgInvalidSlot        = "некорректный временной слот"
	msgPastTimeSlot       = "временной слот уже прошел"
	msgSlotAlreadyBooked  = "слот уже забронирован"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username := middleware.UsernameFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(username)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidRequest):
			h.logger.Warn("POST /bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrPermissionDenied):
			h.logger.Warn("POST /bookings - Permission denied: user=%s, instrument=%s", username, req.Instrument)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot: user=%s, slot=%s", username, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createBooking.ErrPastTimeSlot):
			h.logger.Warn("POST /bookings - Past time slot: user=%s, date=%s, slot=%s",
				username, req.Date, req.TimeSlot)
			handlers.RespondBadRequest(w, msgPastTimeSlot)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: user=%s, instrument=%s, date=%s, slot=%s",
				username, req.Instrument, req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: %s", username)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user=%s, instrument=%s, date=%s, slot=%s",
		result.ID, username, result.Instrument, req.Date, result.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
