package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/club-events-service/internal/api/dto"
	"github.com/spec-kit/club-events-service/internal/auth"
	"github.com/spec-kit/club-events-service/internal/service"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

// AnnouncementsHandler manages announcement endpoints.
type AnnouncementsHandler struct {
	service *service.AnnouncementService
}

// NewAnnouncementsHandler constructs handler.
func NewAnnouncementsHandler(announcementService *service.AnnouncementService) *AnnouncementsHandler {
	return &AnnouncementsHandler{service: announcementService}
}

// Create POST /announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.AnnouncementCreateInput{
		Description: req.Description,
		Poster:      req.Poster,
		InstaLink:   req.InstaLink,
		GformLink:   req.GformLink,
	}
	announcement, err := h.service.Create(c.Context(), principal.ID, principal.Username, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAnnouncementResponse(announcement)})
}

// List GET /announcements.
func (h *AnnouncementsHandler) List(c *fiber.Ctx) error {
	listed, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAnnouncementResponseList(listed)})
}

// ListByAdmin GET /announcements/admin/:username.
func (h *AnnouncementsHandler) ListByAdmin(c *fiber.Ctx) error {
	listed, err := h.service.ListByAdmin(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAnnouncementResponseList(listed)})
}
