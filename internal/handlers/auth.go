package handlers

import (
	"Fabrika/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler обрабатывает регистрацию, логин и logout.
type AuthHandler struct {
	Users  *service.UserService
	Logger *zap.SugaredLogger
}

// NewAuthHandler создаёт хендлер auth
func NewAuthHandler(users *service.UserService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Users: users, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register создаёт пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	user, err := h.Users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			writeDetail(w, http.StatusBadRequest, "Username already exists")
			return
		}
		h.Logger.Errorw("Register: service error", "username", req.Username, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// Login проверяет учётные данные и выдаёт bearer-токен.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			// одинаковый ответ для неизвестного логина и неверного пароля
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "username", req.Username, "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Logout отзывает сессию по значению токена из query-параметра.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "token query parameter is required")
		return
	}

	if err := h.Users.Logout(r.Context(), token); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeDetail(w, http.StatusNotFound, "Session not found")
			return
		}
		h.Logger.Errorw("Logout: service error", "error", err)
		writeDetail(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
