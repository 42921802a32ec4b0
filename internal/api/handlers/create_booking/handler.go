package create_booking

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/asavich/GymClub-BookingService/internal/api/handlers"
	createBooking "github.com/asavich/GymClub-BookingService/internal/usecase/create_booking"
	"github.com/asavich/GymClub-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSelectDateAndTime  = "please select date and time"
	msgInvalidDateFormat  = "invalid date format"
	msgInvalidTimeFormat  = "invalid time format, expected HH:MM"
	msgInvalidYear        = "please select a valid booking year"
	msgDateFromTomorrow   = "date must be from tomorrow"
	msgSlotTaken          = "this slot is already booked"
	msgUnknownService     = "unknown service"
	msgInvalidTimeSlot    = "time is not a valid slot"
	msgInvalidInput       = "invalid booking data"
)

// isoDateRegex строгая форма даты YYYY-MM-DD.
// time.Parse принимает и другие написания, поэтому форма проверяется отдельно.
var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

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
// Порядок проверок фиксирован, первая ошибка обрывает обработку:
// пустые дата/время -> форма даты -> парсинг -> правила usecase -> вставка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// 1. Дата и время обязательны
	if req.Date == "" || req.Time == "" {
		h.logger.Warn("POST /bookings - Missing date or time")
		handlers.RespondBadRequest(w, msgSelectDateAndTime)
		return
	}

	// 2. Строгая форма даты YYYY-MM-DD
	if !isoDateRegex.MatchString(req.Date) {
		h.logger.Warn("POST /bookings - Malformed date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		// Форма даты уже проверена; выясняем, что именно не распарсилось
		if _, timeErr := types.NewTimeStringFromString(req.Time); timeErr != nil {
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: service=%s, date=%s, time=%s",
				req.Service, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrInvalidYear):
			h.logger.Warn("POST /bookings - Invalid year: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, createBooking.ErrDateTooSoon):
			h.logger.Warn("POST /bookings - Date too soon: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateFromTomorrow)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: %s", req.Service)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service=%s, date=%s, time=%s, error=%v",
				req.Service, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, service=%s, date=%s, time=%s",
		result.ID, result.Service, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
