package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Place validation errors
var (
	ErrEmptyPlaceID        = errors.New("place ID cannot be empty")
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters long")
	ErrEmptyAddress        = errors.New("address cannot be empty")
	ErrEmptyCreator        = errors.New("place creator cannot be empty")
	ErrInvalidLocation     = errors.New("location is out of range")
	ErrEmptyPlaceImage     = errors.New("place image cannot be empty")
)

// MinDescriptionLength is the shortest accepted place description, in characters.
const MinDescriptionLength = 5

// Location is a latitude/longitude pair as returned by the geocoder.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinates are finite and within range.
func (l Location) Validate() error {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) ||
		l.Lat < -90 || l.Lat > 90 || l.Lng < -180 || l.Lng > 180 {
		return NewValidationError("location", "is out of range", ErrInvalidLocation)
	}
	return nil
}

// Place is a shared location created by exactly one user.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	Image       string    `json:"image"`
	CreatorID   uuid.UUID `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace creates a Place with a fresh ID. The location must already be resolved.
func NewPlace(
	title, description, address string,
	location Location,
	image string,
	creatorID uuid.UUID,
) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Address:     strings.TrimSpace(address),
		Location:    location,
		Image:       image,
		CreatorID:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrEmptyPlaceID)
	}
	if err := ValidatePlaceDetails(p.Title, p.Description); err != nil {
		return err
	}
	if strings.TrimSpace(p.Address) == "" {
		return NewValidationError("address", "cannot be empty", ErrEmptyAddress)
	}
	if err := p.Location.Validate(); err != nil {
		return err
	}
	if p.Image == "" {
		return NewValidationError("image", "cannot be empty", ErrEmptyPlaceImage)
	}
	if p.CreatorID == uuid.Nil {
		return NewValidationError("creator", "cannot be empty", ErrEmptyCreator)
	}
	return nil
}

// ApplyDetails replaces title and description, the only fields an owner may edit.
func (p *Place) ApplyDetails(title, description string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := ValidatePlaceDetails(title, description); err != nil {
		return err
	}
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOwnedBy reports whether userID created the place.
func (p *Place) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && p.CreatorID == userID
}

// ValidatePlaceDetails checks the user-editable text fields of a place.
func ValidatePlaceDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}
	if len([]rune(strings.TrimSpace(description))) < MinDescriptionLength {
		return NewValidationError("description", "is too short", ErrDescriptionTooShort)
	}
	return nil
}
