package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/mocks"
	"github.com/jobdesk/jobdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserHandler(users *mocks.MockUserStore) *UserHandler {
	return NewUserHandler(users, &mocks.MockTokenService{}, &mocks.MockPasswordHasher{})
}

func TestUserHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("admin creation may grant the admin flag", func(t *testing.T) {
		t.Parallel()

		var created *domain.User
		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				created = user
				return nil
			},
		}
		handler := newUserHandler(users)

		rec := postJSON(handler.Create, "/users",
			`{"username":"root","firstName":"Root","lastName":"Admin","email":"root@example.com","password":"sup3rsecret","isAdmin":true}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.True(t, created.IsAdmin)
		assert.Equal(t, "hashed:sup3rsecret", created.HashedPassword)
		assert.Empty(t, created.Password)

		var resp UserCreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.User.IsAdmin)
		assert.NotEmpty(t, resp.Token)
		assert.NotContains(t, rec.Body.String(), "hashed:")
	})

	t.Run("taken username is bad request", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrUsernameExists
			},
		}
		handler := newUserHandler(users)

		rec := postJSON(handler.Create, "/users",
			`{"username":"alice","firstName":"Alice","lastName":"Ng","email":"alice@example.com","password":"sup3rsecret"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username already taken")
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		rec := postJSON(handler.Create, "/users", `{"username":"alice"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope struct {
			Error struct {
				Message []string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Error.Message, 4)
	})
}

func TestUserHandlerGet(t *testing.T) {
	t.Parallel()

	t.Run("includes application job IDs", func(t *testing.T) {
		t.Parallel()

		jobID := uuid.New()
		users := &mocks.MockUserStore{
			GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return &domain.User{Username: username, FirstName: "Alice", Email: "alice@example.com"}, nil
			},
			ApplicationIDsFn: func(ctx context.Context, username string) ([]uuid.UUID, error) {
				return []uuid.UUID{jobID}, nil
			},
		}
		handler := newUserHandler(users)

		req := withRouteParams(httptest.NewRequest(http.MethodGet, "/users/alice", nil),
			map[string]string{"username": "alice"})
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.User.Username)
		require.Len(t, resp.User.Applications, 1)
		assert.Equal(t, jobID, resp.User.Applications[0])
	})

	t.Run("unknown username is 404", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		req := withRouteParams(httptest.NewRequest(http.MethodGet, "/users/ghost", nil),
			map[string]string{"username": "ghost"})
		rec := httptest.NewRecorder()
		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "user not found")
	})
}

func TestUserHandlerUpdate(t *testing.T) {
	t.Parallel()

	t.Run("password is hashed before it reaches the store", func(t *testing.T) {
		t.Parallel()

		var gotPatch store.UserPatch
		users := &mocks.MockUserStore{
			UpdateFn: func(ctx context.Context, username string, patch store.UserPatch) (*domain.User, error) {
				gotPatch = patch
				return &domain.User{Username: username, FirstName: "Alice"}, nil
			},
		}
		handler := newUserHandler(users)

		req := withRouteParams(
			httptest.NewRequest(http.MethodPatch, "/users/alice", strings.NewReader(`{"password":"n3w-password"}`)),
			map[string]string{"username": "alice"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotPatch.HashedPassword)
		assert.Equal(t, "hashed:n3w-password", *gotPatch.HashedPassword)
	})

	t.Run("isAdmin cannot be patched", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		req := withRouteParams(
			httptest.NewRequest(http.MethodPatch, "/users/alice", strings.NewReader(`{"isAdmin":true}`)),
			map[string]string{"username": "alice"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("username cannot be patched", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		req := withRouteParams(
			httptest.NewRequest(http.MethodPatch, "/users/alice", strings.NewReader(`{"username":"mallory"}`)),
			map[string]string{"username": "alice"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		req := withRouteParams(
			httptest.NewRequest(http.MethodPatch, "/users/alice", strings.NewReader(`{}`)),
			map[string]string{"username": "alice"})
		rec := httptest.NewRecorder()
		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "no fields to update")
	})
}

func TestUserHandlerDelete(t *testing.T) {
	t.Parallel()

	users := &mocks.MockUserStore{
		DeleteFn: func(ctx context.Context, username string) error {
			if username == "alice" {
				return nil
			}
			return store.ErrUserNotFound
		},
	}
	handler := newUserHandler(users)

	req := withRouteParams(httptest.NewRequest(http.MethodDelete, "/users/alice", nil),
		map[string]string{"username": "alice"})
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":"alice"}`, rec.Body.String())
}

func TestUserHandlerApply(t *testing.T) {
	t.Parallel()

	t.Run("successful application echoes the job ID", func(t *testing.T) {
		t.Parallel()

		jobID := uuid.New()
		users := &mocks.MockUserStore{
			ApplyFn: func(ctx context.Context, username string, id uuid.UUID) error {
				return nil
			},
		}
		handler := newUserHandler(users)

		req := withRouteParams(
			httptest.NewRequest(http.MethodPost, "/users/alice/jobs/"+jobID.String(), nil),
			map[string]string{"username": "alice", "id": jobID.String()})
		rec := httptest.NewRecorder()
		handler.Apply(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AppliedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, jobID, resp.Applied)
	})

	t.Run("duplicate application is bad request", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{
			ApplyFn: func(ctx context.Context, username string, id uuid.UUID) error {
				return store.ErrAlreadyApplied
			},
		}
		handler := newUserHandler(users)

		jobID := uuid.New()
		req := withRouteParams(
			httptest.NewRequest(http.MethodPost, "/users/alice/jobs/"+jobID.String(), nil),
			map[string]string{"username": "alice", "id": jobID.String()})
		rec := httptest.NewRecorder()
		handler.Apply(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed job ID is bad request", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		req := withRouteParams(
			httptest.NewRequest(http.MethodPost, "/users/alice/jobs/not-a-uuid", nil),
			map[string]string{"username": "alice", "id": "not-a-uuid"})
		rec := httptest.NewRecorder()
		handler.Apply(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "id must be a valid UUID")
	})

	t.Run("applying to a missing job is 404", func(t *testing.T) {
		t.Parallel()

		handler := newUserHandler(&mocks.MockUserStore{})

		jobID := uuid.New()
		req := withRouteParams(
			httptest.NewRequest(http.MethodPost, "/users/alice/jobs/"+jobID.String(), nil),
			map[string]string{"username": "alice", "id": jobID.String()})
		rec := httptest.NewRecorder()
		handler.Apply(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
