package handlers

import (
	"net/http"

	"stockboard/internal/repository"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

// Register creates an account. No token is issued; the client logs in separately.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "username, password and nickname are required", http.StatusBadRequest)
		return
	}

	_, err := h.AuthService.Register(r.Context(), repository.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		h.respondWithError(w, r, err, "registration failed due to a server error")
		return
	}

	writeSuccess(w, MessageResponse{Message: "registration successful"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondWithError(w, r, err, "login failed due to a server error")
		return
	}

	writeSuccess(w, LoginResponse{
		Message:  "login successful",
		Token:    token,
		UserID:   user.UserID,
		Nickname: user.Nickname,
	}, http.StatusOK)
}
