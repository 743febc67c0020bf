package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBooking handles GET /booking
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseOK(w, response.BookingToResponse(booking))
}

// ReserveRoom handles POST /booking
func (h *BookingHandler) ReserveRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req, ok := h.decodeRoomRequest(w, r)
	if !ok {
		return
	}

	booking, err := h.service.ReserveRoom(r.Context(), userID, req.RoomID)
	if err != nil {
		writeServiceError(w, h.log, err, "reserve room")
		return
	}

	utils.ResponseOK(w, response.BookingIDResponse{BookingID: booking.ID})
}

// ChangeRoom handles PUT /booking/{bookingId}. The booking is resolved from the
// authenticated user; the path id only shows up in the logs.
func (h *BookingHandler) ChangeRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req, ok := h.decodeRoomRequest(w, r)
	if !ok {
		return
	}

	booking, err := h.service.ChangeRoom(r.Context(), userID, req.RoomID)
	if err != nil {
		writeServiceError(w, h.log, err, "change room")
		return
	}

	if pathID, err := strconv.Atoi(chi.URLParam(r, "bookingId")); err != nil || pathID != booking.ID {
		h.log.Debug("Booking id in path does not match the user's booking",
			zap.String("path_booking_id", chi.URLParam(r, "bookingId")),
			zap.Int("booking_id", booking.ID),
		)
	}

	utils.ResponseOK(w, response.BookingIDResponse{BookingID: booking.ID})
}

func (h *BookingHandler) decodeRoomRequest(w http.ResponseWriter, r *http.Request) (*request.BookingRoomRequest, bool) {
	var req request.BookingRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return &req, true
}
