package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/RoxyKang/share-my-place-backend/internal/api/shared"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/service"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
)

// UserHandler handles /api/users requests.
type UserHandler struct {
	accounts      service.AccountService
	jwtService    auth.JWTService
	images        ImageStore
	maxImageBytes int64
	logger        *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	accounts service.AccountService,
	jwtService auth.JWTService,
	images ImageStore,
	maxImageBytes int64,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		accounts:      accounts,
		jwtService:    jwtService,
		images:        images,
		maxImageBytes: maxImageBytes,
		logger:        logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Fetching users failed, please try again later.")
		return
	}

	resp := UsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userToResponse(u))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// SignUp handles POST /api/users/signup. The body is a multipart form with
// name, email, password and an image file.
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := parseMultipart(w, r, h.maxImageBytes); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	defer cleanupMultipart(r)

	req := SignUpRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	imagePath, err := saveUploadedImage(r, h.images)
	if err != nil {
		HandleAPIError(w, r, err, "Signing up failed, please try again later.")
		return
	}

	user, err := h.accounts.SignUp(r.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    imagePath,
	})
	if err != nil {
		discardUpload(r.Context(), h.images, imagePath)
		HandleAPIError(w, r, err, "Signing up failed, please try again later.")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		// The account exists; the client can log in to obtain a token.
		HandleAPIError(w, r, err, "Signing up failed, please try again later.")
		return
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: time.Now().Add(h.jwtService.TokenLifetime()).UTC().Format(time.RFC3339),
	})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, MsgInvalidInputs, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the client.
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidCredentials, err)
			return
		}
		HandleAPIError(w, r, err, "Logging in failed, please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:    result.UserID,
		Email:     result.Email,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
