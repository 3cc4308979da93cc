package handlers

import (
	"net/http"
	"time"

	"hirepulse/internal/app"
	"hirepulse/internal/common"
	"hirepulse/internal/domain/job"
	"hirepulse/internal/http/middleware"
	"hirepulse/internal/http/response"
)

type JobHandler struct {
	jobs    *app.JobService
	limiter middleware.Limiter
}

func NewJobHandler(jobs *app.JobService, limiter middleware.Limiter) *JobHandler {
	return &JobHandler{jobs: jobs, limiter: limiter}
}

type createJobRequest struct {
	Title        string              `json:"title" validate:"required"`
	Company      string              `json:"company" validate:"required"`
	Description  string              `json:"description" validate:"required"`
	Requirements []string            `json:"requirements" validate:"required,min=1"`
	Skills       []string            `json:"skills" validate:"required,min=1"`
	Status       string              `json:"status"`
	Location     string              `json:"location" validate:"required"`
	Type         string              `json:"type" validate:"required"`
	Experience   job.ExperienceRange `json:"experience"`
	Salary       job.SalaryRange     `json:"salary"`
}

type updateJobRequest struct {
	Title        *string              `json:"title"`
	Company      *string              `json:"company"`
	Description  *string              `json:"description"`
	Requirements []string             `json:"requirements"`
	Skills       []string             `json:"skills"`
	Status       *string              `json:"status"`
	Location     *string              `json:"location"`
	Type         *string              `json:"type"`
	Experience   *job.ExperienceRange `json:"experience"`
	Salary       *job.SalaryRange     `json:"salary"`
}

type jobResponse struct {
	Success bool     `json:"success"`
	Job     *job.Job `json:"job"`
}

type jobListResponse struct {
	Success bool      `json:"success"`
	Jobs    []job.Job `json:"jobs"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		PostedBy:     userID,
		Status:       job.Status(req.Status),
		Location:     req.Location,
		Type:         job.Type(req.Type),
		Experience:   req.Experience,
		Salary:       req.Salary,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, jobResponse{Success: true, Job: created})
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, jobListResponse{Success: true, Jobs: items})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, jobResponse{Success: true, Job: item})
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	patch := app.JobPatch{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Location:     req.Location,
		Experience:   req.Experience,
		Salary:       req.Salary,
	}
	if req.Status != nil {
		status := job.Status(*req.Status)
		patch.Status = &status
	}
	if req.Type != nil {
		jobType := job.Type(*req.Type)
		patch.Type = &jobType
	}
	updated, err := h.jobs.Update(r.Context(), jobID, patch, userID, role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, jobResponse{Success: true, Job: updated})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), jobID, userID, role); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Success: true, Message: "Job deleted successfully"})
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + userID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	if _, err := h.jobs.Apply(r.Context(), jobID, userID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Success: true, Message: "Application submitted successfully"})
}
