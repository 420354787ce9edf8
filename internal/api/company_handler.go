package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jobdesk/jobdesk-api/internal/api/shared"
	"github.com/jobdesk/jobdesk-api/internal/domain"
	"github.com/jobdesk/jobdesk-api/internal/store"
)

// CompanyHandler handles company CRUD endpoints.
type CompanyHandler struct {
	companies store.CompanyStore
	jobs      store.JobStore
}

// NewCompanyHandler creates a new CompanyHandler with the given dependencies.
func NewCompanyHandler(companies store.CompanyStore, jobs store.JobStore) *CompanyHandler {
	return &CompanyHandler{companies: companies, jobs: jobs}
}

// Create handles POST /companies (admin only).
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}

	company, err := domain.NewCompany(req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)
	if err != nil {
		HandleAPIError(w, r, shared.BadRequest(err.Error()))
		return
	}

	if err := h.companies.Create(r.Context(), company); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CompanyResponse{Company: company})
}

// List handles GET /companies (public). Query parameters are coerced
// before the filter's rule set is evaluated.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	coercer := shared.NewQueryCoercer(r.URL.Query())
	filter := CompanyFilterRequest{
		NameLike:     coercer.String("nameLike"),
		MinEmployees: coercer.Int("minEmployees"),
		MaxEmployees: coercer.Int("maxEmployees"),
	}
	if perr := coercer.Err(); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(filter); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if filter.MinEmployees != nil && filter.MaxEmployees != nil &&
		*filter.MinEmployees > *filter.MaxEmployees {
		HandleAPIError(w, r, shared.BadRequest("minEmployees cannot exceed maxEmployees"))
		return
	}

	companies, err := h.companies.List(r.Context(), store.CompanyFilter{
		NameLike:     filter.NameLike,
		MinEmployees: filter.MinEmployees,
		MaxEmployees: filter.MaxEmployees,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if companies == nil {
		companies = []*domain.Company{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompaniesResponse{Companies: companies})
}

// Get handles GET /companies/{handle} (public). The response includes the
// company's job postings.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	company, err := h.companies.GetByHandle(r.Context(), handle)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	jobs, err := h.jobs.ListByCompany(r.Context(), handle)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyDetailResponse{
		Company: CompanyDetail{Company: company, Jobs: jobs},
	})
}

// Update handles PATCH /companies/{handle} (admin only).
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	var req UpdateCompanyRequest
	if perr := shared.DecodeJSON(r, &req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if perr := shared.ValidateStruct(req); perr != nil {
		HandleAPIError(w, r, perr)
		return
	}
	if req.Name == nil && req.Description == nil && req.NumEmployees == nil && req.LogoURL == nil {
		HandleAPIError(w, r, shared.BadRequest("no fields to update"))
		return
	}

	company, err := h.companies.Update(r.Context(), handle, store.CompanyPatch{
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CompanyResponse{Company: company})
}

// Delete handles DELETE /companies/{handle} (admin only).
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	if err := h.companies.Delete(r.Context(), handle); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeletedResponse{Deleted: handle})
}
