package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/service"
)

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := service.NewTokenService("secret", ttl).Issue(&domain.User{
		ID:    1,
		Email: "alice@example.com",
		Role:  domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, time.Hour))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxUserID) != "1" {
			t.Fatalf("user id not set")
		}
		if c.Get(CtxEmail) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != "admin" {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RejectsTamperedExpiredAndGarbage(t *testing.T) {
	cases := map[string]string{
		"garbage": "Bearer not-a-token",
		"expired": "Bearer " + signedToken(t, -time.Hour),
	}
	tampered := signedToken(t, time.Hour)
	cases["tampered"] = "Bearer " + tampered[:len(tampered)-4] + "AAAA"

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
			handler := mw(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestOptionalAuth_AnonymousWithoutHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := OptionalAuth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		if c.Get(CtxRole) != nil {
			t.Fatalf("expected no claims attached")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_InvalidTokenContinuesAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer busted")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := OptionalAuth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		if c.Get(CtxRole) != nil {
			t.Fatalf("invalid token must not attach claims")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_ValidTokenAttachesClaims(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, time.Hour))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := OptionalAuth(service.NewTokenService("secret", time.Hour), zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		if c.Get(CtxRole) != "admin" {
			t.Fatalf("expected claims attached")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
