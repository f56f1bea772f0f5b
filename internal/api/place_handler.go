package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/service"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
)

// PlaceHandler handles /api/places requests.
type PlaceHandler struct {
	places        service.PlaceService
	images        ImageStore
	maxImageBytes int64
	logger        *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(
	places service.PlaceService,
	images ImageStore,
	maxImageBytes int64,
	logger *slog.Logger,
) *PlaceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlaceHandler")
	}

	return &PlaceHandler{
		places:        places,
		images:        images,
		maxImageBytes: maxImageBytes,
		logger:        logger.With(slog.String("component", "place_handler")),
	}
}

// GetPlace handles GET /api/places/{pid}.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID, err := getPathUUID(r, "pid")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.places.GetPlace(r.Context(), placeID)
	if err != nil {
		HandleAPIError(w, r, err, "Something went wrong, could not find a place.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlaceEnvelope{Place: placeToResponse(place)})
}

// GetPlacesByUser handles GET /api/places/user/{uid}.
func (h *PlaceHandler) GetPlacesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "uid")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	places, err := h.places.GetPlacesByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgUserPlacesNotFound, err)
			return
		}
		HandleAPIError(w, r, err, "Fetching places failed, please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlacesEnvelope{Places: placesToResponse(places)})
}

// CreatePlace handles POST /api/places. The body is a multipart form with
// title, description, address and an image file.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := parseMultipart(w, r, h.maxImageBytes); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	defer cleanupMultipart(r)

	req := CreatePlaceRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	imagePath, err := saveUploadedImage(r, h.images)
	if err != nil {
		HandleAPIError(w, r, err, "Creating place failed, please try again.")
		return
	}

	place, err := h.places.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Image:       imagePath,
		CreatorID:   caller.UserID,
	})
	if err != nil {
		discardUpload(r.Context(), h.images, imagePath)
		HandleAPIError(w, r, err, "Creating place failed, please try again.")
		return
	}

	log.Debug("place created", slog.String("place_id", place.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, PlaceEnvelope{Place: placeToResponse(place)})
}

// UpdatePlace handles PATCH /api/places/{pid}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	placeID, err := getPathUUID(r, "pid")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, MsgInvalidInputs, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.places.UpdatePlace(r.Context(), placeID, service.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
	}, caller.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Something went wrong, could not update place.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlaceEnvelope{Place: placeToResponse(place)})
}

// DeletePlace handles DELETE /api/places/{pid}.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	placeID, err := getPathUUID(r, "pid")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.places.DeletePlace(r.Context(), placeID, caller.UserID); err != nil {
		HandleAPIError(w, r, err, "Something went wrong, could not delete place.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Deleted place."})
}
