package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kitty100176/nmr-booking-system/internal/api/handlers"
	"github.com/kitty100176/nmr-booking-system/internal/api/middleware"
	"github.com/kitty100176/nmr-booking-system/internal/domain"
	getSchedule "github.com/kitty100176/nmr-booking-system/internal/usecase/get_schedule"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden    = "инструмент недоступен для этого пользователя"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/instruments/{instrument}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instrument := vars["instrument"]
	username := middleware.UsernameFromContext(r.Context())

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /instruments/{instrument}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{
		Username:   username,
		Instrument: instrument,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidRequest):
			h.logger.Warn("GET /instruments/{instrument}/schedule - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getSchedule.ErrPermissionDenied):
			h.logger.Warn("GET /instruments/{instrument}/schedule - Permission denied: user=%s, instrument=%s",
				username, instrument)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getSchedule.ErrUserNotFound):
			h.logger.Warn("GET /instruments/{instrument}/schedule - User not found: %s", username)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /instruments/{instrument}/schedule - Failed to get schedule: user=%s, error=%v",
				username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
