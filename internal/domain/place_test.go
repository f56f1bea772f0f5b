package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

var empireState = Location{Lat: 40.7484474, Lng: -73.9871516}

func TestNewPlace(t *testing.T) {
	creator := uuid.New()
	place, err := NewPlace(
		"Empire State Building",
		"One of the most famous sky scrapers in the world!",
		"20 W 34th St, New York, NY 10001",
		empireState,
		"uploads/images/esb.png",
		creator,
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if place.ID == uuid.Nil {
		t.Error("Expected generated ID")
	}
	if place.Location != empireState {
		t.Errorf("Expected location %v, got %v", empireState, place.Location)
	}
	if !place.IsOwnedBy(creator) {
		t.Error("Expected creator to own place")
	}
	if place.IsOwnedBy(uuid.New()) || place.IsOwnedBy(uuid.Nil) {
		t.Error("Expected other users not to own place")
	}
}

func TestNewPlace_ValidationErrors(t *testing.T) {
	creator := uuid.New()
	tests := []struct {
		name        string
		title       string
		description string
		address     string
		location    Location
		image       string
		creator     uuid.UUID
		wantErr     error
	}{
		{"empty title", "", "long enough", "addr", empireState, "img", creator, ErrEmptyTitle},
		{"short description", "t", "abcd", "addr", empireState, "img", creator, ErrDescriptionTooShort},
		{"empty address", "t", "long enough", " ", empireState, "img", creator, ErrEmptyAddress},
		{"bad location", "t", "long enough", "addr", Location{Lat: 91}, "img", creator, ErrInvalidLocation},
		{"empty image", "t", "long enough", "addr", empireState, "", creator, ErrEmptyPlaceImage},
		{"no creator", "t", "long enough", "addr", empireState, "img", uuid.Nil, ErrEmptyCreator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlace(tt.title, tt.description, tt.address, tt.location, tt.image, tt.creator)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPlaceApplyDetails(t *testing.T) {
	place, err := NewPlace("Old", "old description", "addr", empireState, "img", uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	before := *place

	if err := place.ApplyDetails("New title", "new description"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if place.Title != "New title" || place.Description != "new description" {
		t.Errorf("details not applied: %+v", place)
	}
	if place.Address != before.Address || place.Location != before.Location ||
		place.CreatorID != before.CreatorID || place.Image != before.Image {
		t.Error("Expected non-editable fields to stay untouched")
	}

	if err := place.ApplyDetails("", "new description"); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected %v, got %v", ErrEmptyTitle, err)
	}
	if place.Title != "New title" {
		t.Error("Expected failed update to leave title unchanged")
	}
}
