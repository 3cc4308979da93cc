package handlers

import (
	"net/http"

	"hirepulse/internal/app"
	"hirepulse/internal/domain/user"
	"hirepulse/internal/http/middleware"
	"hirepulse/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateProfileRequest struct {
	Profile struct {
		FirstName  *string  `json:"firstName"`
		LastName   *string  `json:"lastName"`
		Phone      *string  `json:"phone"`
		Skills     []string `json:"skills"`
		Experience *string  `json:"experience"`
		ResumeURL  *string  `json:"resumeUrl"`
	} `json:"profile"`
}

type userStatusRequest struct {
	IsActive   *bool `json:"isActive"`
	IsVerified *bool `json:"isVerified"`
}

type userResponse struct {
	Success bool       `json:"success"`
	User    *user.User `json:"user"`
}

type userListResponse struct {
	Success bool        `json:"success"`
	Users   []user.User `json:"users"`
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	item, err := h.users.Profile(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, userResponse{Success: true, User: item})
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.users.UpdateProfile(r.Context(), userID, app.ProfilePatch{
		FirstName:  req.Profile.FirstName,
		LastName:   req.Profile.LastName,
		Phone:      req.Profile.Phone,
		Skills:     req.Profile.Skills,
		Experience: req.Profile.Experience,
		ResumeURL:  req.Profile.ResumeURL,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, userResponse{Success: true, User: updated})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []user.User{}
	}
	response.JSON(w, http.StatusOK, userListResponse{Success: true, Users: items})
}

func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	targetID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req userStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.users.UpdateStatus(r.Context(), targetID, req.IsActive, req.IsVerified)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, userResponse{Success: true, User: updated})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	targetID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.users.Delete(r.Context(), targetID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, messageResponse{Success: true, Message: "User deleted successfully"})
}
