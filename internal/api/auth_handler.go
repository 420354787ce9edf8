package api

import (
	"errors"
	"net/http"

	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/platform/logger"
	"github.com/jobdesk/jobdesk-api/internal/service/auth"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	users    store.UserStore
	tokens   auth.TokenService
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	tokens auth.TokenService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		verifier: verifier,
	}
}

// Token handles POST /auth/token: exchanges a username/password pair for
// a signed credential.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same response as a wrong password; login must not reveal
			// which usernames exist.
			HandleAPIError(w, r, shared.Unauthorized("invalid username or password"))
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		HandleAPIError(w, r, shared.Unauthorized("invalid username or password"))
		return
	}

	token, err := h.tokens.Sign(r.Context(), user.Username, user.IsAdmin)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Register handles POST /auth/register: self-service signup. The created
// user is never an admin regardless of payload contents.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	user, err := domain.NewUser(req.Username, req.FirstName, req.LastName, req.Email, req.Password, false)
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
		logger.FromContext(r.Context()).Error("user created but token signing failed",
			"error", err,
			"username", user.Username)
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TokenResponse{Token: token})
}
