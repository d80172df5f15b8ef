package handler

import (
	"errors"
	"strings"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	usr, pair, err := h.uc.Register(c.Context(), usecase.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"user":          map[string]any{"id": usr.ID, "email": usr.Email},
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req credentialsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	usr, pair, err := h.uc.Login(c.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"user":          map[string]any{"id": usr.ID, "email": usr.Email},
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	if err := h.uc.Logout(c.Context(), tok); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid email or password format", err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken), errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

func bearerFromAuthorizationHeader(h string) (string, bool) {
	h = strings.TrimSpace(h)
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
