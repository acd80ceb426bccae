package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/service"
	"github.com/aihub/usecase-hub/internal/infrastructure/db/postgres"
)

type testEnv struct {
	e  *echo.Echo
	db *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open in-memory db")
	require.NoError(t, postgres.Migrate(db), "migrate tables")

	tokens := service.NewTokenService("test-secret", time.Hour)
	e := NewRouter(db, nil, tokens, zerolog.Nop())
	return &testEnv{e: e, db: db}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates an account, optionally promotes it, and returns a
// fresh token carrying the promoted role.
func (env *testEnv) registerAndLogin(t *testing.T, email string, role domain.Role) string {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "longenough",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	if role != domain.RoleUser {
		err := env.db.Exec("UPDATE users SET role = ? WHERE email = ?", string(role), email).Error
		require.NoError(t, err)
	}

	rec = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "longenough",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestProtectedRoute_NoHeader(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/usecases/1", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "Authentication required", body.Error)
}

func TestProtectedRoute_InvalidToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/usecases/1", "garbage.token.here", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "Invalid or expired token", body.Error)
}

func TestProtectedRoute_InsufficientRole(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "viewer@example.com", domain.RoleViewer)

	// POST /v1/usecases allow-lists admin and editor only.
	rec := env.do(t, http.MethodPost, "/v1/usecases", token, map[string]string{
		"title": "Fraud detection",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeEnvelope(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "Insufficient permissions", body.Error)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	_ = env.registerAndLogin(t, "dup@example.com", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Someone Else",
		"email":    "dup@example.com",
		"password": "longenough",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	require.False(t, decodeEnvelope(t, rec).Success)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	_ = env.registerAndLogin(t, "login@example.com", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUseCaseLifecycle(t *testing.T) {
	env := newTestEnv(t)
	editor := env.registerAndLogin(t, "editor@example.com", domain.RoleEditor)
	admin := env.registerAndLogin(t, "admin@example.com", domain.RoleAdmin)

	// Editor creates a draft.
	rec := env.do(t, http.MethodPost, "/v1/usecases", editor, map[string]string{
		"title":         "Support ticket triage",
		"description":   "Classify inbound tickets with an LLM",
		"business_area": "customer_service",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "draft", created.Status)
	require.NotZero(t, created.ID)

	path := fmt.Sprintf("/v1/usecases/%d", created.ID)

	// draft → approved skips review and must be rejected.
	rec = env.do(t, http.MethodPut, path, editor, map[string]string{
		"title":  "Support ticket triage",
		"status": "approved",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

	// draft → in_review → approved.
	for _, status := range []string{"in_review", "approved"} {
		rec = env.do(t, http.MethodPut, path, editor, map[string]string{
			"title":  "Support ticket triage",
			"status": status,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	// Anonymous list: the approved record is visible without a token.
	rec = env.do(t, http.MethodGet, "/v1/usecases", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []struct {
			ID uint `json:"id"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, int64(1), list.Total)

	// Deletion is admin-only.
	rec = env.do(t, http.MethodDelete, path, editor, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodDelete, path, admin, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, path, admin, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnonymousList_HidesUnapproved(t *testing.T) {
	env := newTestEnv(t)
	editor := env.registerAndLogin(t, "editor2@example.com", domain.RoleEditor)

	rec := env.do(t, http.MethodPost, "/v1/usecases", editor, map[string]string{
		"title": "Draft only",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Anonymous callers see nothing while the record is a draft.
	rec = env.do(t, http.MethodGet, "/v1/usecases", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var anonList struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &anonList))
	require.Zero(t, anonList.Total)

	// The authenticated owner sees it.
	rec = env.do(t, http.MethodGet, "/v1/usecases", editor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var authList struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &authList))
	require.Equal(t, int64(1), authList.Total)
}

func TestUserAdministration(t *testing.T) {
	env := newTestEnv(t)
	admin := env.registerAndLogin(t, "root@example.com", domain.RoleAdmin)
	user := env.registerAndLogin(t, "plain@example.com", domain.RoleUser)

	// Non-admins cannot list users.
	rec := env.do(t, http.MethodGet, "/v1/users", user, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/v1/users", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Promote the plain user to editor, case-insensitively.
	rec = env.do(t, http.MethodPut, "/v1/users/2/role", admin, map[string]string{"role": "EDITOR"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var promoted struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &promoted))
	require.Equal(t, "editor", promoted.Role)

	// The already-issued token still carries the old role: the promotion only
	// takes effect after the next login.
	rec = env.do(t, http.MethodPost, "/v1/usecases", user, map[string]string{"title": "x"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Unknown labels are rejected at this boundary.
	rec = env.do(t, http.MethodPut, "/v1/users/2/role", admin, map[string]string{"role": "superuser"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Self-deletion is refused; deleting the other account works.
	rec = env.do(t, http.MethodDelete, "/v1/users/1", admin, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/v1/users/2", admin, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "me@example.com", domain.RoleViewer)

	rec := env.do(t, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var me struct {
		Email        string `json:"email"`
		Role         string `json:"role"`
		PasswordHash string `json:"password_hash"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.Equal(t, "me@example.com", me.Email)
	require.Equal(t, "viewer", me.Role)
	require.Empty(t, me.PasswordHash, "hash must never serialize")
}
