package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// JobHandler handles job CRUD endpoints.
type JobHandler struct {
	jobs store.JobStore
}

// NewJobHandler creates a new JobHandler with the given dependencies.
func NewJobHandler(jobs store.JobStore) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// jobID parses the {id} route parameter. A malformed ID is a BadRequest,
// not a NotFound: the reference never named a resource at all.
func jobID(r *http.Request) (uuid.UUID, *shared.PipelineError) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.BadRequest("id must be a valid UUID")
	}
	return id, nil
}

// Create handles POST /jobs (admin only).
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	job, err := domain.NewJob(req.Title, req.Salary, req.Equity, req.CompanyHandle)
	if err != nil {
		HandleAPIError(w, r, shared.BadRequest(err.Error()))
		return
	}

	if err := h.jobs.Create(r.Context(), job); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, JobResponse{Job: job})
}

// List handles GET /jobs (public).
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	coercer := shared.NewQueryCoercer(r.URL.Query())
	filter := JobFilterRequest{
		TitleLike: coercer.String("titleLike"),
		MinSalary: coercer.Int("minSalary"),
		HasEquity: coercer.Bool("hasEquity"),
	}
	if perr := coercer.Err(); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(filter); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	jobs, err := h.jobs.List(r.Context(), store.JobFilter{
		TitleLike: filter.TitleLike,
		MinSalary: filter.MinSalary,
		HasEquity: filter.HasEquity,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobsResponse{Jobs: jobs})
}

// Get handles GET /jobs/{id} (public).
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, perr := jobID(r)
	if perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	job, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobResponse{Job: job})
}

// Update handles PATCH /jobs/{id} (admin only).
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := jobID(r)
	if perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	var req UpdateJobRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if req.Title == nil && req.Salary == nil && req.Equity == nil {
		HandleAPIError(w, r, shared.BadRequest("no fields to update"))
		return
	}

	job, err := h.jobs.Update(r.Context(), id, store.JobPatch{
		Title:  req.Title,
		Salary: req.Salary,
		Equity: req.Equity,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, JobResponse{Job: job})
}

// Delete handles DELETE /jobs/{id} (admin only).
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := jobID(r)
	if perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	if err := h.jobs.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeletedResponse{Deleted: id.String()})
}
