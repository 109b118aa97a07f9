// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"isdn/internal/delivery/http/response"
	"isdn/internal/domain/entity"
	"isdn/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Region    string `json:"region" validate:"required"`
	ContactNo string `json:"contactNo"`
	Address   string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userInfoResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Region    string `json:"region,omitempty"`
	ContactNo string `json:"contactNo,omitempty"`
	Address   string `json:"address,omitempty"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  userInfoResponse `json:"user"`
}

func toUserInfoResponse(info *usecase.UserInfo) userInfoResponse {
	return userInfoResponse{
		ID:        info.ID.String(),
		Name:      info.Name,
		Email:     info.Email,
		Role:      info.Role.String(),
		Region:    info.Region.String(),
		ContactNo: info.ContactNo,
		Address:   info.Address,
	}
}

// Register handles customer self-registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	info, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Region:    entity.Region(req.Region),
		ContactNo: req.ContactNo,
		Address:   req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserInfoResponse(info), "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Token: out.AccessToken,
		User:  toUserInfoResponse(out.User),
	}, "Login successful")
}

// Logout acknowledges the logout. Access tokens are stateless, so the client
// discards the token; there is no server-side session to tear down.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
