package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/club-events-service/internal/api/dto"
	"github.com/spec-kit/club-events-service/internal/service"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

// AuthHandler exposes registration and login for admins and users.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterAdmin handles POST /register.
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	admin, err := h.auth.RegisterAdmin(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.RegisterResponse{ID: admin.ID, Username: admin.Username},
	})
}

// LoginAdmin handles POST /login.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	token, exp, err := h.auth.LoginAdmin(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token, ExpiresAt: exp})
}

// RegisterUser handles POST /register-user.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.auth.RegisterUser(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.RegisterResponse{ID: user.ID, Username: user.Username},
	})
}

// LoginUser handles POST /login-user.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	token, exp, err := h.auth.LoginUser(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token, ExpiresAt: exp})
}

func parseCredentials(c *fiber.Ctx) (*dto.CredentialsRequest, error) {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}
	return &req, nil
}
