package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/mocks"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/imagestore"
	"github.com/RoxyKang/share-my-place-backend/internal/service"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
	"github.com/RoxyKang/share-my-place-backend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupFields() map[string]string {
	return map[string]string{"name": "Max", "email": "max@test.com", "password": "testers"}
}

func newUserHandler(accounts service.AccountService, images ImageStore) (*UserHandler, *mocks.MockJWTService) {
	jwt := &mocks.MockJWTService{Token: "signed.jwt.token"}
	return NewUserHandler(accounts, jwt, images, testMaxImageBytes, slog.Default()), jwt
}

func TestNewUserHandler_NilLogger(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewUserHandler(&mocks.MockAccountService{}, nil, nil, 1, nil) })
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Max", "max@test.com", "$2a$10$secret", "uploads/images/max.png")
	require.NoError(t, err)
	accounts := &mocks.MockAccountService{
		ListUsersFn: func(ctx context.Context) ([]*domain.User, error) { return []*domain.User{user}, nil },
	}
	h, _ := newUserHandler(accounts, &mocks.MockImageStore{})

	w := httptest.NewRecorder()
	h.ListUsers(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "$2a$10$secret")
	assert.NotContains(t, w.Body.String(), "password")

	var resp UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, user.ID, resp.Users[0].ID)
	assert.Equal(t, []uuid.UUID{}, resp.Users[0].Places)
}

func TestUserHandler_ListUsers_Failure(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountService{
		ListUsersFn: func(ctx context.Context) ([]*domain.User, error) { return nil, errors.New("db down") },
	}
	h, _ := newUserHandler(accounts, &mocks.MockImageStore{})

	w := httptest.NewRecorder()
	h.ListUsers(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestUserHandler_SignUp(t *testing.T) {
	t.Parallel()

	var got service.SignUpInput
	var created *domain.User
	accounts := &mocks.MockAccountService{
		SignUpFn: func(ctx context.Context, in service.SignUpInput) (*domain.User, error) {
			got = in
			u, err := domain.NewUser(in.Name, in.Email, "hashed", in.Image)
			created = u
			return u, err
		},
	}
	images := &mocks.MockImageStore{Path: "uploads/images/new.png"}
	h, _ := newUserHandler(accounts, images)

	w := httptest.NewRecorder()
	h.SignUp(w, multipartRequest(t, http.MethodPost, "/api/users/signup", signupFields(), pngBytes))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "uploads/images/new.png", got.Image)
	assert.Equal(t, "testers", got.Password)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.UserID)
	assert.Equal(t, "max@test.com", resp.Email)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	_, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	assert.NoError(t, err)
	assert.Empty(t, images.DeletedPaths())
}

func TestUserHandler_SignUp_RejectedInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  map[string]string
		image   []byte
		saveErr error
		wantMsg string
	}{
		{name: "short password", fields: map[string]string{"name": "Max", "email": "max@test.com", "password": "123"}, image: pngBytes},
		{name: "bad email", fields: map[string]string{"name": "Max", "email": "nope", "password": "testers"}, image: pngBytes},
		{name: "missing name", fields: map[string]string{"email": "max@test.com", "password": "testers"}, image: pngBytes},
		{name: "missing image", fields: signupFields(), image: nil},
		{name: "unsupported image", fields: signupFields(), image: []byte("GIF89a"), saveErr: imagestore.ErrUnsupportedType, wantMsg: MsgInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signUpCalled := false
			accounts := &mocks.MockAccountService{
				SignUpFn: func(ctx context.Context, in service.SignUpInput) (*domain.User, error) {
					signUpCalled = true
					return nil, errors.New("unexpected")
				},
			}
			h, _ := newUserHandler(accounts, &mocks.MockImageStore{Path: "uploads/images/x.png", SaveErr: tt.saveErr})

			w := httptest.NewRecorder()
			h.SignUp(w, multipartRequest(t, http.MethodPost, "/api/users/signup", tt.fields, tt.image))

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.False(t, signUpCalled)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeError(t, w))
			}
		})
	}
}

func TestUserHandler_SignUp_DuplicateEmailDiscardsUpload(t *testing.T) {
	t.Parallel()

	accounts := &mocks.MockAccountService{
		SignUpFn: func(ctx context.Context, in service.SignUpInput) (*domain.User, error) {
			return nil, store.ErrEmailExists
		},
	}
	images := &mocks.MockImageStore{Path: "uploads/images/dup.png"}
	h, _ := newUserHandler(accounts, images)

	w := httptest.NewRecorder()
	h.SignUp(w, multipartRequest(t, http.MethodPost, "/api/users/signup", signupFields(), pngBytes))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, MsgUserExists, decodeError(t, w))
	assert.Equal(t, []string{"uploads/images/dup.png"}, images.DeletedPaths())
}

func TestUserHandler_SignUp_TokenFailure(t *testing.T) {
	t.Parallel()

	h, jwt := newUserHandler(&mocks.MockAccountService{}, &mocks.MockImageStore{Path: "uploads/images/x.png"})
	jwt.Err = errors.New("signing key unavailable")

	w := httptest.NewRecorder()
	h.SignUp(w, multipartRequest(t, http.MethodPost, "/api/users/signup", signupFields(), pngBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "signing key")
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	accounts := &mocks.MockAccountService{
		LoginFn: func(ctx context.Context, email, password string) (*service.LoginResult, error) {
			switch {
			case email == "ghost@test.com":
				return nil, store.ErrUserNotFound
			case password != "testers":
				return nil, service.ErrInvalidCredentials
			case email == "broken@test.com":
				return nil, auth.ErrHashing
			}
			return &service.LoginResult{UserID: userID, Email: email, Token: "tok", ExpiresAt: expires}, nil
		},
	}
	h, _ := newUserHandler(accounts, &mocks.MockImageStore{})

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, jsonRequest(t, http.MethodPost, "/api/users/login",
			LoginRequest{Email: "max@test.com", Password: "testers"}))

		require.Equal(t, http.StatusOK, w.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, "tok", resp.Token)
		assert.Equal(t, "2030-01-01T00:00:00Z", resp.ExpiresAt)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		h.Login(w1, jsonRequest(t, http.MethodPost, "/api/users/login",
			LoginRequest{Email: "ghost@test.com", Password: "testers"}))
		w2 := httptest.NewRecorder()
		h.Login(w2, jsonRequest(t, http.MethodPost, "/api/users/login",
			LoginRequest{Email: "max@test.com", Password: "wrong-password"}))

		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)
		assert.Equal(t, MsgInvalidCredentials, decodeError(t, w1))
		assert.Equal(t, decodeError(t, w1), decodeError(t, w2))
	})

	t.Run("internal failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, jsonRequest(t, http.MethodPost, "/api/users/login",
			LoginRequest{Email: "broken@test.com", Password: "testers"}))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/api/users/login", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, jsonRequest(t, http.MethodPost, "/api/users/login",
			LoginRequest{Email: "nope", Password: "testers"}))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "Invalid email: invalid email format", decodeError(t, w))
	})
}
