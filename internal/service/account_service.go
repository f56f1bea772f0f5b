package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/redact"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
)

// SignUpInput carries the fields of a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// LoginResult is the identity and token issued by a successful login.
type LoginResult struct {
	UserID    uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
}

// AccountService provides user registration, authentication and listing.
type AccountService interface {
	// ListUsers returns every registered user. Digests are never serialized.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// SignUp registers a new user with an empty place list.
	// Returns a domain validation error on bad input and store.ErrEmailExists
	// when the normalized email is taken.
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)

	// Login checks the password for email and issues a token.
	// Returns store.ErrUserNotFound for an unknown email and
	// ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// accountServiceImpl implements the AccountService interface
type accountServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAccountService creates a new AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) (AccountService, error) {
	if userStore == nil {
		return nil, &AccountServiceError{Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if hasher == nil {
		return nil, &AccountServiceError{Operation: "create_service", Message: "hasher cannot be nil"}
	}
	if jwtService == nil {
		return nil, &AccountServiceError{Operation: "create_service", Message: "jwtService cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "account_service")),
	}, nil
}

// ListUsers implements AccountService.
func (s *accountServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.userStore.List(ctx)
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, NewAccountServiceError("list_users", "failed to fetch users", err)
	}
	return users, nil
}

// SignUp implements AccountService.
func (s *accountServiceImpl) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("name", "cannot be empty", domain.ErrEmptyName)
	}
	email := domain.NormalizeEmail(input.Email)
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	// The unique index still guards the race between this check and the insert.
	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		log.Debug("sign up rejected: email already registered")
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check existing user", slog.String("error", redact.Error(err)))
		return nil, NewAccountServiceError("sign_up", "failed to check existing user", err)
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", redact.Error(err)))
		return nil, err
	}

	user, err := domain.NewUser(input.Name, email, digest, input.Image)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if !errors.Is(err, store.ErrEmailExists) {
			log.Error("failed to create user", slog.String("error", redact.Error(err)))
		}
		return nil, NewAccountServiceError("sign_up", "failed to create user", err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login implements AccountService.
func (s *accountServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to load user for login", slog.String("error", redact.Error(err)))
		return nil, NewAccountServiceError("login", "failed to load user", err)
	}

	ok, err := s.hasher.Verify(password, user.HashedPassword)
	if err != nil {
		log.Error("failed to verify password",
			slog.String("user_id", user.ID.String()),
			slog.String("error", redact.Error(err)))
		return nil, NewAccountServiceError("login", "failed to verify password", err)
	}
	if !ok {
		log.Debug("login failed: password mismatch", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue token",
			slog.String("user_id", user.ID.String()),
			slog.String("error", redact.Error(err)))
		return nil, NewAccountServiceError("login", "failed to issue token", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return &LoginResult{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.jwtService.TokenLifetime()),
	}, nil
}
