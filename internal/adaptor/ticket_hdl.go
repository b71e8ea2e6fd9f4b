package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.BookingService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// BookTicket handles POST /tickets/ (protected)
func (h *TicketHandler) BookTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BookTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.BookTicket(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrShowNotFound):
			utils.ResponseNotFound(w, "No show available for selected Movie/Cinema/Date")
		case errors.Is(err, repository.ErrInsufficientSeats):
			utils.ResponseNotFound(w, "No tickets are available for selected data")
		case errors.Is(err, usecase.ErrValidation):
			utils.ResponseBadRequest(w, err.Error(), nil)
		default:
			h.log.Error("Failed to book ticket", zap.Error(err), zap.Int64("user_id", userID))
			utils.ResponseInternalError(w, "Unexpected error occurred. Try again later.")
		}
		return
	}

	utils.ResponseCreated(w, "Ticket booked successfully", ticket)
}

// GetUserTickets handles GET /tickets/ (protected)
func (h *TicketHandler) GetUserTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	tickets, err := h.service.GetUserTickets(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get user tickets", zap.Error(err), zap.Int64("user_id", userID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}
