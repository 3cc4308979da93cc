package handlers

import (
	"net/http"

	"hirepulse/internal/app"
	"hirepulse/internal/domain/interview"
	"hirepulse/internal/http/middleware"
	"hirepulse/internal/http/response"
)

type InterviewHandler struct {
	interviews *app.InterviewService
}

func NewInterviewHandler(interviews *app.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type startInterviewRequest struct {
	JobRole        string `json:"jobRole" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

type answerRequest struct {
	QuestionIndex *int             `json:"questionIndex" validate:"required"`
	Answer        interview.Answer `json:"answer" validate:"required"`
}

type feedbackRequest struct {
	Shortlisted bool   `json:"shortlisted"`
	Comments    string `json:"comments"`
	Rating      int    `json:"rating"`
}

type interviewResponse struct {
	Success   bool                 `json:"success"`
	Interview *interview.Interview `json:"interview"`
}

type interviewListResponse struct {
	Success    bool                  `json:"success"`
	Interviews []interview.Interview `json:"interviews"`
}

func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req startInterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.interviews.Start(r.Context(), userID, req.JobRole, req.JobDescription)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, interviewResponse{Success: true, Interview: created})
}

func (h *InterviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.interviews.SubmitAnswer(r.Context(), interviewID, userID, *req.QuestionIndex, req.Answer)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, interviewResponse{Success: true, Interview: updated})
}

func (h *InterviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.interviews.Get(r.Context(), interviewID, userID, role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, interviewResponse{Success: true, Interview: item})
}

func (h *InterviewHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		response.Error(w, errUnauthorized())
		return
	}
	targetID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.interviews.ListByUser(r.Context(), targetID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []interview.Interview{}
	}
	response.JSON(w, http.StatusOK, interviewListResponse{Success: true, Interviews: items})
}

func (h *InterviewHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.interviews.SubmitFeedback(r.Context(), interviewID, userID, interview.RecruiterFeedback{
		Shortlisted: req.Shortlisted,
		Comments:    req.Comments,
		Rating:      req.Rating,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, interviewResponse{Success: true, Interview: updated})
}

func (h *InterviewHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	interviewID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.interviews.GenerateQuestions(r.Context(), interviewID, userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, interviewResponse{Success: true, Interview: updated})
}
