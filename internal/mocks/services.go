package mocks

import (
	"context"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/service"
	"github.com/google/uuid"
)

// MockAccountService implements service.AccountService for testing
type MockAccountService struct {
	ListUsersFn func(ctx context.Context) ([]*domain.User, error)
	SignUpFn    func(ctx context.Context, input service.SignUpInput) (*domain.User, error)
	LoginFn     func(ctx context.Context, email, password string) (*service.LoginResult, error)
}

var _ service.AccountService = (*MockAccountService)(nil)

// ListUsers implements service.AccountService.
func (m *MockAccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return []*domain.User{}, nil
}

// SignUp implements service.AccountService.
func (m *MockAccountService) SignUp(ctx context.Context, input service.SignUpInput) (*domain.User, error) {
	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, input)
	}
	return domain.NewUser(input.Name, input.Email, "hashed", input.Image)
}

// Login implements service.AccountService.
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

// MockPlaceService implements service.PlaceService for testing.
// Every function used by a test must be set.
type MockPlaceService struct {
	GetPlaceFn        func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	GetPlacesByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Place, error)
	CreatePlaceFn     func(ctx context.Context, input service.CreatePlaceInput) (*domain.Place, error)
	UpdatePlaceFn     func(ctx context.Context, placeID uuid.UUID, input service.UpdatePlaceInput, requesterID uuid.UUID) (*domain.Place, error)
	DeletePlaceFn     func(ctx context.Context, placeID, requesterID uuid.UUID) error
}

var _ service.PlaceService = (*MockPlaceService)(nil)

// GetPlace implements service.PlaceService.
func (m *MockPlaceService) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	return m.GetPlaceFn(ctx, placeID)
}

// GetPlacesByUser implements service.PlaceService.
func (m *MockPlaceService) GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Place, error) {
	return m.GetPlacesByUserFn(ctx, userID)
}

// CreatePlace implements service.PlaceService.
func (m *MockPlaceService) CreatePlace(ctx context.Context, input service.CreatePlaceInput) (*domain.Place, error) {
	return m.CreatePlaceFn(ctx, input)
}

// UpdatePlace implements service.PlaceService.
func (m *MockPlaceService) UpdatePlace(
	ctx context.Context,
	placeID uuid.UUID,
	input service.UpdatePlaceInput,
	requesterID uuid.UUID,
) (*domain.Place, error) {
	return m.UpdatePlaceFn(ctx, placeID, input, requesterID)
}

// DeletePlace implements service.PlaceService.
func (m *MockPlaceService) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	return m.DeletePlaceFn(ctx, placeID, requesterID)
}
