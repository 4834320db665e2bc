// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/http/response"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthResponse is the body returned by signup and login.
type AuthResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    entity.UserSummary `json:"user"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles account registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Signup successful",
		Token:   output.Token,
		User:    output.User,
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   output.Token,
		User:    output.User,
	})
}

// Me returns the user that owns the bearer token. It must run behind AuthMiddleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, user.Summary(), "Profile retrieved successfully")
}

func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
