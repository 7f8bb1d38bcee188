//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-backend/internal/adapter/postgres"
	projectrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/project"
	taskrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/task"
	"github.com/taskboard/taskboard-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/token"
	userrepo "github.com/taskboard/taskboard-backend/internal/adapter/postgres/user"
	authpkg "github.com/taskboard/taskboard-backend/internal/auth"
	"github.com/taskboard/taskboard-backend/internal/config"
	authsvc "github.com/taskboard/taskboard-backend/internal/service/auth"
	projectsvc "github.com/taskboard/taskboard-backend/internal/service/project"
	tasksvc "github.com/taskboard/taskboard-backend/internal/service/task"
	"github.com/taskboard/taskboard-backend/internal/transport/middleware"
	"github.com/taskboard/taskboard-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	projects := projectrepo.New(pool)
	tasks := taskrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4, // minimum bcrypt cost keeps tests fast
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 5. Services.
	authService := authsvc.NewService(logger, users, tokens, jwtMgr, authCfg)
	projectService := projectsvc.NewService(logger, projects, tasks, users, txm)
	taskService := tasksvc.NewService(logger, tasks, projects, users)

	// 6. Router + middleware chain.
	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Projects: rest.NewProjectHandler(projectService, taskService, logger),
		Tasks:    rest.NewTaskHandler(taskService, logger),
		Health:   rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// REST helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request and returns the raw response. The caller
// owns resp.Body.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeEnvelope decodes and closes the response body.
func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var env map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// envData extracts the "data" object from a response envelope.
func envData(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	data, ok := env["data"].(map[string]any)
	require.True(t, ok, "expected data object in envelope, got %v", env)
	return data
}

// envDataSlice extracts the "data" array from a response envelope.
func envDataSlice(t *testing.T, env map[string]any) []any {
	t.Helper()
	data, ok := env["data"].([]any)
	require.True(t, ok, "expected data array in envelope, got %v", env)
	return data
}

var userSeq int

// registerTestUser registers a fresh user and returns its access token,
// refresh token, and the user object. Emails are unique per call.
func registerTestUser(t *testing.T, ts *testServer, prefix string) (accessToken, refreshToken string, user map[string]any) {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("%s-%d@example.com", prefix, userSeq)
	username := fmt.Sprintf("%s%d", prefix, userSeq)

	resp := restRequest(t, ts, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envData(t, decodeEnvelope(t, resp))
	accessToken, _ = data["accessToken"].(string)
	refreshToken, _ = data["refreshToken"].(string)
	user, _ = data["user"].(map[string]any)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	require.NotNil(t, user)
	return accessToken, refreshToken, user
}

// createTestProject creates a project and returns its id.
func createTestProject(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/api/projects", token, map[string]string{
		"name":        name,
		"description": "created by e2e tests",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envData(t, decodeEnvelope(t, resp))
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// createTestTask creates a task in the given project and returns its id.
func createTestTask(t *testing.T, ts *testServer, token, projectID, title string) string {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/api/tasks", token, map[string]any{
		"title":     title,
		"projectId": projectID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envData(t, decodeEnvelope(t, resp))
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	return id
}
