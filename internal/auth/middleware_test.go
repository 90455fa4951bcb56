package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/club-events-service/internal/domain"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

func newTestApp(tm *TokenManager, next fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	app.Get("/protected", NewMiddleware(tm).Handle, next)
	return app
}

func TestMiddleware_MissingHeader(t *testing.T) {
	app := newTestApp(newTestManager(), func(c *fiber.Ctx) error {
		t.Error("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_BearerWithoutToken(t *testing.T) {
	app := newTestApp(newTestManager(), func(c *fiber.Ctx) error {
		t.Error("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	app := newTestApp(newTestManager(), func(c *fiber.Ctx) error {
		t.Error("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	expired := NewTokenManager("secret", -time.Minute, -time.Minute)
	token, _, err := expired.Issue(1, "alice", domain.RoleUser)
	require.NoError(t, err)

	app := newTestApp(newTestManager(), func(c *fiber.Ctx) error {
		t.Error("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddleware_ValidTokenAttachesPrincipal(t *testing.T) {
	tm := newTestManager()
	token, _, err := tm.Issue(42, "alice", domain.RoleAdmin)
	require.NoError(t, err)

	app := newTestApp(tm, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			t.Error("principal missing from context")
			return c.SendStatus(http.StatusInternalServerError)
		}
		assert.Equal(t, int64(42), principal.ID)
		assert.Equal(t, "alice", principal.Username)
		assert.Equal(t, domain.RoleAdmin, principal.Role)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	tm := newTestManager()
	userToken, _, err := tm.Issue(7, "bob", domain.RoleUser)
	require.NoError(t, err)
	adminToken, _, err := tm.Issue(8, "alice", domain.RoleAdmin)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	app.Post("/admin-only", NewMiddleware(tm).Handle, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
