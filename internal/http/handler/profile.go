package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/FlamesIsCool/tagz-bio/internal/core"
	"github.com/FlamesIsCool/tagz-bio/internal/http/handler/middleware"
	"github.com/FlamesIsCool/tagz-bio/internal/http/payload"
	"github.com/FlamesIsCool/tagz-bio/internal/repository"
)

var (
	Signup        = "POST /api/signup"
	Login         = "POST /api/login"
	Me            = "GET /api/me"
	UpdateMe      = "PUT /api/me"
	PublicProfile = "GET /api/profile/{username}"
	Health        = "GET /api/health"
)

type ProfileHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tagz             ProfileService
}

func NewProfileHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, profileService ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tagz:             profileService,
	}
}

func (h *ProfileHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SignupRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Signup failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	token, err := h.tagz.Signup(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Signup failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) || errors.Is(err, core.ErrEmailRegistered) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	h.respond(w, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, http.StatusOK, requestId)
}

func (h *ProfileHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req, err := payload.LoginRequestFromForm(r)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.tagz.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			// uniform for unknown identifier and wrong password
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, http.StatusOK, requestId)
}

func (h *ProfileHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.sessionUser(w, r, Me, requestId)
	if !ok {
		return
	}

	view, err := h.tagz.ProfileOf(r.Context(), user)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not load profile",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to load profile",
			"error", err,
			"handler", Me,
			"request_id", requestId)
		return
	}

	h.respond(w, view, http.StatusOK, requestId)
}

func (h *ProfileHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	user, ok := h.sessionUser(w, r, UpdateMe, requestId)
	if !ok {
		return
	}

	var req payload.UpdateProfileRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Profile update failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateMe,
			"request_id", requestId)
		return
	}

	view, err := h.tagz.UpdateProfile(r.Context(), user, req.ToMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Profile update failed",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to update profile",
			"error", err,
			"handler", UpdateMe,
			"request_id", requestId)
		return
	}

	h.respond(w, view, http.StatusOK, requestId)
}

func (h *ProfileHandler) HandlePublicProfile(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	username := strings.TrimPrefix(r.URL.Path, "/api/profile/")
	if username == "" {
		h.respond(w, Response{
			Message: "Profile not found",
			Error:   "username path parameter is required",
		}, http.StatusNotFound,
			requestId)
		return
	}

	view, err := h.tagz.PublicProfile(r.Context(), username)
	if err != nil {
		resp := Response{
			Message: "Profile not found",
		}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = "Could not load profile"
			resp.Error = "unexpected error occurred"
		} else {
			resp.Error = err.Error()
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to load public profile",
			"error", err,
			"handler", PublicProfile,
			"request_id", requestId)
		return
	}

	h.respond(w, view, http.StatusOK, requestId)
}

func (h *ProfileHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.respond(w, HealthResponse{
		OK:   true,
		Time: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK, requestId)
}

// sessionUser resolves the bearer token to a user or writes the 401 itself.
func (h *ProfileHandler) sessionUser(w http.ResponseWriter, r *http.Request, route, requestId string) (repository.User, bool) {
	token := bearerToken(r)
	if token == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "bearer token is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing bearer token", "handler", route, "request_id", requestId)
		return repository.User{}, false
	}

	user, err := h.tagz.ResolveSession(r.Context(), token)
	if err != nil {
		resp := Response{
			Message: "Authentication failed",
		}
		httpCode := http.StatusUnauthorized
		if errors.Is(err, core.ErrInvalidToken) || errors.Is(err, core.ErrUserNotFound) {
			resp.Error = err.Error()
		} else {
			httpCode = http.StatusInternalServerError
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to resolve session",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return repository.User{}, false
	}

	return user, true
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	requestId, _ := reqIdCtx.(string)
	return requestId
}

func (h *ProfileHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
