package api

import (
	"time"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/google/uuid"
)

// SignUpRequest holds the text fields of the multipart signup form.
type SignUpRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expiresAt,omitempty"`
}

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Image  string      `json:"image"`
	Places []uuid.UUID `json:"places"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// CreatePlaceRequest holds the text fields of the multipart place form.
type CreatePlaceRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required,min=5"`
	Address     string `validate:"required"`
}

// UpdatePlaceRequest defines the payload for PATCH /api/places/{pid}.
type UpdatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// PlaceResponse is the public view of a place.
type PlaceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Location    domain.Location `json:"location"`
	Image       string          `json:"image"`
	Creator     uuid.UUID       `json:"creator"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PlaceEnvelope wraps a single place.
type PlaceEnvelope struct {
	Place PlaceResponse `json:"place"`
}

// PlacesEnvelope wraps a place list.
type PlacesEnvelope struct {
	Places []PlaceResponse `json:"places"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func userToResponse(u *domain.User) UserResponse {
	places := u.Places
	if places == nil {
		places = []uuid.UUID{}
	}
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Places: places,
	}
}

func placeToResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    p.Location,
		Image:       p.Image,
		Creator:     p.CreatorID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func placesToResponse(places []*domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, placeToResponse(p))
	}
	return out
}
