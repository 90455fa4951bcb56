package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/club-events-service/internal/domain"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

// RequireRole gates a route to principals carrying the given role.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewForbidden("authentication required")
		}
		if principal.Role != role {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
