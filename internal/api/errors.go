package api

import (
	"errors"
	"net/http"

	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/service/auth"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// HandleAPIError is the terminal error mapper. Handlers and pipeline
// stages never write failure responses themselves; every error funnels
// through here and comes out as the stable error envelope. Errors already
// expressed as a PipelineError pass through unchanged; domain and store
// errors are translated into the taxonomy; anything unrecognized becomes a
// ServerFault whose detail is logged but suppressed from the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithPipelineError(w, r, toPipelineError(err))
}

// toPipelineError classifies an arbitrary error into the failure taxonomy.
func toPipelineError(err error) *shared.PipelineError {
	var perr *shared.PipelineError
	if errors.As(err, &perr) {
		return perr
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return shared.BadRequest(verr.Error())
	}

	switch {
	case store.IsNotFoundError(err):
		return shared.NotFound(safeMessage(err))

	case store.IsDuplicateError(err):
		return shared.BadRequest(safeMessage(err))

	case errors.Is(err, store.ErrInvalidEntity):
		return shared.BadRequest(safeMessage(err))

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return shared.Unauthorized("invalid credentials")

	case errors.Is(err, domain.ErrUnauthorized):
		return shared.Unauthorized("invalid credentials")

	default:
		return shared.ServerFault("an unexpected error occurred", err)
	}
}

// safeMessage returns a sanitized, user-facing message for a recognized
// store error. Internal detail never leaks into the response.
func safeMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrCompanyNotFound):
		return "company not found"
	case errors.Is(err, store.ErrJobNotFound):
		return "job not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, store.ErrNotFound):
		return "resource not found"
	case errors.Is(err, store.ErrCompanyExists):
		return "company already exists"
	case errors.Is(err, store.ErrUsernameExists):
		return "username already taken"
	case errors.Is(err, store.ErrAlreadyApplied):
		return "already applied to this job"
	case errors.Is(err, store.ErrDuplicate):
		return "resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "invalid entity data"
	default:
		return "an unexpected error occurred"
	}
}
