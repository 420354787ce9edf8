package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/service/auth"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// UserHandler handles user and application endpoints.
type UserHandler struct {
	users  store.UserStore
	tokens auth.TokenService
	hasher auth.PasswordHasher
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(users store.UserStore, tokens auth.TokenService, hasher auth.PasswordHasher) *UserHandler {
	return &UserHandler{users: users, tokens: tokens, hasher: hasher}
}

// Create handles POST /users (admin only). Unlike registration it may
// grant the admin capability, and it returns a credential for the new
// user alongside the user itself.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	user, err := domain.NewUser(req.Username, req.FirstName, req.LastName, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		HandleAPIError(w, r, shared.BadRequest(err.Error()))
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.users.Create(r.Context(), user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.tokens.Sign(r.Context(), user.Username, user.IsAdmin)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UserCreatedResponse{
		User:  NewUserView(user, nil),
		Token: token,
	})
}

// List handles GET /users (admin only).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user, nil))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: views})
}

// Get handles GET /users/{username} (self or admin). The response
// includes the IDs of the jobs the user applied to.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	applications, err := h.users.ApplicationIDs(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: NewUserView(user, applications)})
}

// Update handles PATCH /users/{username} (self or admin). The admin flag
// cannot be changed here; only Create can grant it.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req UpdateUserRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if req.FirstName == nil && req.LastName == nil && req.Email == nil && req.Password == nil {
		HandleAPIError(w, r, shared.BadRequest("no fields to update"))
		return
	}

	patch := store.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if req.Password != nil {
		hashed, err := h.hasher.Hash(*req.Password)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		patch.HashedPassword = &hashed
	}

	user, err := h.users.Update(r.Context(), username, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: NewUserView(user, nil)})
}

// Delete handles DELETE /users/{username} (self or admin).
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.users.Delete(r.Context(), username); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeletedResponse{Deleted: username})
}

// Apply handles POST /users/{username}/jobs/{id} (self or admin).
func (h *UserHandler) Apply(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, shared.BadRequest("id must be a valid UUID"))
		return
	}

	if err := h.users.Apply(r.Context(), username, id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AppliedResponse{Applied: id})
}
