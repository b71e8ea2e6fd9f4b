package usecase

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.userRepo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error("Failed to check phone number", zap.Error(err), zap.String("phone_number", req.PhoneNumber))
		return nil, fmt.Errorf("check phone number: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrDuplicatePhone
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	// The unique index backs up the pre-check, so a racing duplicate
	// registration still comes back as ErrDuplicatePhone.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err != repository.ErrDuplicatePhone {
			s.log.Error("Failed to create user", zap.Error(err), zap.String("phone_number", req.PhoneNumber))
		}
		return nil, err
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("phone_number", user.PhoneNumber))

	return &response.RegisterResponse{PhoneNumber: user.PhoneNumber}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.userRepo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("phone_number", req.PhoneNumber))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		s.log.Warn("Login with unregistered phone number", zap.String("phone_number", req.PhoneNumber))
		return nil, ErrUnknownPhone
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.Int64("user_id", user.ID))
		return nil, ErrWrongPassword
	}

	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateRefreshToken(s.config.JWT.Secret, user.ID, expiry)
	if err != nil {
		s.log.Error("Failed to issue refresh token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("phone_number", user.PhoneNumber))

	return &response.LoginResponse{RefreshToken: token}, nil
}
