package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/redact"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
)

// Geocoder resolves a postal address to coordinates.
// Implementations return domain.ErrAddressNotFound when the address has no match.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Location, error)
}

// ImageRemover deletes a stored image by the path recorded on a place.
type ImageRemover interface {
	Delete(ctx context.Context, path string) error
}

// CreatePlaceInput carries the fields of a new place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Image       string
	CreatorID   uuid.UUID
}

// UpdatePlaceInput carries the owner-editable fields of a place.
type UpdatePlaceInput struct {
	Title       string
	Description string
}

// PlaceService provides place registry operations.
type PlaceService interface {
	// GetPlace returns a place by ID, or store.ErrPlaceNotFound.
	GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)

	// GetPlacesByUser returns the places created by userID.
	// A user without places yields store.ErrPlaceNotFound.
	GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Place, error)

	// CreatePlace geocodes the address and, in one transaction, stores the
	// place and appends it to the creator's place list.
	CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error)

	// UpdatePlace changes title and description. Only the creator may update.
	UpdatePlace(
		ctx context.Context,
		placeID uuid.UUID,
		input UpdatePlaceInput,
		requesterID uuid.UUID,
	) (*domain.Place, error)

	// DeletePlace removes the place and the creator's reference to it in one
	// transaction. Only the creator may delete.
	DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error
}

// placeServiceImpl implements the PlaceService interface
type placeServiceImpl struct {
	db         store.TxBeginner
	placeStore store.PlaceStore
	userStore  store.UserStore
	geocoder   Geocoder
	images     ImageRemover
	logger     *slog.Logger
}

// NewPlaceService creates a new PlaceService.
// images may be nil, in which case deleted places keep their image files.
func NewPlaceService(
	db store.TxBeginner,
	placeStore store.PlaceStore,
	userStore store.UserStore,
	geocoder Geocoder,
	images ImageRemover,
	logger *slog.Logger,
) (PlaceService, error) {
	if db == nil {
		return nil, &PlaceServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if placeStore == nil {
		return nil, &PlaceServiceError{Operation: "create_service", Message: "placeStore cannot be nil"}
	}
	if userStore == nil {
		return nil, &PlaceServiceError{Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if geocoder == nil {
		return nil, &PlaceServiceError{Operation: "create_service", Message: "geocoder cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &placeServiceImpl{
		db:         db,
		placeStore: placeStore,
		userStore:  userStore,
		geocoder:   geocoder,
		images:     images,
		logger:     logger.With(slog.String("component", "place_service")),
	}, nil
}

// GetPlace implements PlaceService.
func (s *placeServiceImpl) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if !errors.Is(err, store.ErrPlaceNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get place",
				slog.String("place_id", placeID.String()),
				slog.String("error", redact.Error(err)))
		}
		return nil, NewPlaceServiceError("get_place", "failed to fetch place", err)
	}
	return place, nil
}

// GetPlacesByUser implements PlaceService.
func (s *placeServiceImpl) GetPlacesByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	places, err := s.placeStore.ListByCreator(ctx, userID)
	if err != nil {
		log.Error("failed to list places",
			slog.String("user_id", userID.String()),
			slog.String("error", redact.Error(err)))
		return nil, NewPlaceServiceError("get_places_by_user", "failed to fetch places", err)
	}
	if len(places) == 0 {
		log.Debug("user has no places", slog.String("user_id", userID.String()))
		return nil, store.ErrPlaceNotFound
	}
	return places, nil
}

// CreatePlace implements PlaceService.
func (s *placeServiceImpl) CreatePlace(
	ctx context.Context,
	input CreatePlaceInput,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidatePlaceDetails(input.Title, input.Description); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, domain.NewValidationError("address", "cannot be empty", domain.ErrEmptyAddress)
	}

	location, err := s.geocoder.Resolve(ctx, input.Address)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			log.Debug("address could not be geocoded")
			return nil, ErrGeocoding
		}
		log.Error("geocoding failed", slog.String("error", redact.Error(err)))
		return nil, NewPlaceServiceError("create_place", "failed to geocode address", err)
	}

	place, err := domain.NewPlace(
		input.Title,
		input.Description,
		input.Address,
		location,
		input.Image,
		input.CreatorID,
	)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.userStore.WithTx(tx)
		txPlaces := s.placeStore.WithTx(tx)

		if _, err := txUsers.GetByID(ctx, input.CreatorID); err != nil {
			return err
		}
		if err := txPlaces.Create(ctx, place); err != nil {
			return err
		}
		return txUsers.AddPlace(ctx, input.CreatorID, place.ID)
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to create place in transaction",
				slog.String("place_id", place.ID.String()),
				slog.String("creator_id", input.CreatorID.String()),
				slog.String("error", redact.Error(err)))
		}
		return nil, transactionError("create_place", err)
	}

	log.Info("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("creator_id", input.CreatorID.String()))
	return place, nil
}

// UpdatePlace implements PlaceService.
func (s *placeServiceImpl) UpdatePlace(
	ctx context.Context,
	placeID uuid.UUID,
	input UpdatePlaceInput,
	requesterID uuid.UUID,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		return nil, NewPlaceServiceError("update_place", "failed to fetch place", err)
	}
	if !place.IsOwnedBy(requesterID) {
		log.Warn("update rejected: requester does not own place",
			slog.String("place_id", placeID.String()),
			slog.String("requester_id", requesterID.String()))
		return nil, ErrNotOwned
	}

	if err := place.ApplyDetails(input.Title, input.Description); err != nil {
		return nil, err
	}
	if err := s.placeStore.Update(ctx, place); err != nil {
		log.Error("failed to update place",
			slog.String("place_id", placeID.String()),
			slog.String("error", redact.Error(err)))
		return nil, NewPlaceServiceError("update_place", "failed to save place", err)
	}

	log.Info("place updated", slog.String("place_id", placeID.String()))
	return place, nil
}

// DeletePlace implements PlaceService.
func (s *placeServiceImpl) DeletePlace(ctx context.Context, placeID, requesterID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		return NewPlaceServiceError("delete_place", "failed to fetch place", err)
	}
	if !place.IsOwnedBy(requesterID) {
		log.Warn("delete rejected: requester does not own place",
			slog.String("place_id", placeID.String()),
			slog.String("requester_id", requesterID.String()))
		return ErrNotOwned
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.placeStore.WithTx(tx).Delete(ctx, place.ID); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).RemovePlace(ctx, place.CreatorID, place.ID)
	})
	if err != nil {
		log.Error("failed to delete place in transaction",
			slog.String("place_id", placeID.String()),
			slog.String("error", redact.Error(err)))
		return transactionError("delete_place", err)
	}

	if s.images != nil {
		if err := s.images.Delete(ctx, place.Image); err != nil {
			log.Warn("failed to delete place image",
				slog.String("place_id", placeID.String()),
				slog.String("error", redact.Error(err)))
		}
	}

	log.Info("place deleted", slog.String("place_id", placeID.String()))
	return nil
}
