package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*entity.User, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*entity.User, *entity.Session, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*entity.User, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign up validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrBadRequest)
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Save user, the unique email constraint decides duplicates
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User signed up",
		zap.Int("user_id", user.ID),
		zap.String("email", user.Email))

	return user, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*entity.User, *entity.Session, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign in validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("%s: %w", utils.FormatValidationErrors(errs), ErrBadRequest)
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for sign in", zap.String("email", req.Email))
		return nil, nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int("user_id", user.ID))
		return nil, nil, ErrInvalidCredentials
	}

	// 4. Issue token and persist the session it belongs to
	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateSessionToken(user.ID, s.config.JWT.Secret, ttl)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.Int("user_id", user.ID))
		return nil, nil, fmt.Errorf("sign token: %w", err)
	}

	session := &entity.Session{
		UserID: user.ID,
		Token:  token,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User signed in", zap.Int("user_id", user.ID))

	return user, session, nil
}
