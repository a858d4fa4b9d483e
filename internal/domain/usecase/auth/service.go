package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Minyanaing/item-market/internal/domain/entity"
	errs "github.com/Minyanaing/item-market/internal/domain/error"
	coreport "github.com/Minyanaing/item-market/internal/domain/port/core"
	"github.com/Minyanaing/item-market/internal/domain/port/persistence"
	"github.com/Minyanaing/item-market/internal/domain/port/usecase"
)

// Service handles registration and login. Credential hashing and session
// token mechanics live behind ports; this service only wires identity to
// the configured starting balance.
type Service struct {
	userRepo        persistence.UserRepository
	hasher          coreport.PasswordHasher
	tokens          coreport.TokenIssuer
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	startingBalance string
}

// NewService creates a new auth service. startingBalance is the amount every
// new account begins with, formatted with two decimal places.
func NewService(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	startingBalance string,
) *Service {
	return &Service{
		userRepo:        userRepo,
		hasher:          hasher,
		tokens:          tokens,
		timeProvider:    timeProvider,
		logger:          logger,
		startingBalance: startingBalance,
	}
}

// Register creates a new user and logs them in immediately
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.AuthResult, error) {
	if req.Username == "" {
		return nil, errs.ErrInvalidUsername
	}

	_, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		s.logger.Warn("Registration rejected, username taken", map[string]any{
			"username": req.Username,
		})
		return nil, errs.ErrDuplicateUser
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %s", errs.ErrInternalServer, err.Error())
	}

	// ID is assigned by the store on insert
	user, err := entity.NewPendingUser(req.Username, req.Email, hash, s.startingBalance, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to issue session token: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"balance":  user.FormattedBalance(),
	})

	return &usecase.AuthResult{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
		Notification: entity.NewSuccessNotification(
			"Account created successfully! You are now logged in as: %s", user.Username),
	}, nil
}

// Login verifies credentials and issues a session token
func (s *Service) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Unknown user and wrong password are indistinguishable to the caller
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash(), password) {
		s.logger.Warn("Login rejected, password mismatch", map[string]any{
			"username": username,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to issue session token: %s", errs.ErrInternalServer, err.Error())
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &usecase.AuthResult{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
		Notification: entity.NewSuccessNotification(
			"Success! You are logged in as: %s", user.Username),
	}, nil
}
