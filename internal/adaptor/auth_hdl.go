package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /user/
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePhone):
			utils.ResponseConflict(w, "Phone number already exists")
		case errors.Is(err, usecase.ErrValidation):
			utils.ResponseBadRequest(w, err.Error(), nil)
		default:
			h.log.Error("Failed to register user", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseCreated(w, "User created successfully.", user)
}

// Login handles POST /user/login/
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	login, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownPhone):
			// Unknown number and wrong password stay distinct on the wire.
			utils.ResponseUnauthorized(w, fmt.Sprintf(
				"Please check your phone number %s/ If not registered, kindly register with us.",
				req.PhoneNumber))
		case errors.Is(err, usecase.ErrWrongPassword):
			utils.ResponseNotFound(w, "Kindly check your password.")
		case errors.Is(err, usecase.ErrValidation):
			utils.ResponseBadRequest(w, err.Error(), nil)
		default:
			h.log.Error("Failed to login user", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Logged in as %s", req.PhoneNumber), login)
}
