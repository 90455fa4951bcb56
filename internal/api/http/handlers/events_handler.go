package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/club-events-service/internal/api/dto"
	"github.com/spec-kit/club-events-service/internal/auth"
	"github.com/spec-kit/club-events-service/internal/service"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

// EventsHandler manages event endpoints. Creation is admin-gated by the
// route chain; reads are public.
type EventsHandler struct {
	service *service.EventService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService) *EventsHandler {
	return &EventsHandler{service: eventService}
}

// Create POST /events.
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.EventCreateInput{
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		Description:  req.Description,
		EventTime:    req.DateTime,
		Poster:       req.Poster,
		GformLink:    req.GformLink,
		Location:     req.Location,
		LocationLink: req.LocationLink,
		InstaLink:    req.InstaLink,
	}
	event, err := h.service.Create(c.Context(), principal.ID, principal.Username, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// List GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	listed, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponseList(listed)})
}

// Get GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid event id", nil)
	}
	event, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// ListByAdmin GET /events/admin/:username.
func (h *EventsHandler) ListByAdmin(c *fiber.Ctx) error {
	listed, err := h.service.ListByAdmin(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponseList(listed)})
}
