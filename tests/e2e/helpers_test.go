//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/holyghost-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/category"
	impressionrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/impression"
	"github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/holyghost-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/holyghost-backend/internal/auth"
	"github.com/heartmarshall/holyghost-backend/internal/config"
	"github.com/heartmarshall/holyghost-backend/internal/provider"
	authsvc "github.com/heartmarshall/holyghost-backend/internal/service/auth"
	"github.com/heartmarshall/holyghost-backend/internal/service/journal"
	"github.com/heartmarshall/holyghost-backend/internal/service/quiz"
	"github.com/heartmarshall/holyghost-backend/internal/transport/middleware"
	"github.com/heartmarshall/holyghost-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL       string
	Client    *http.Client
	Pool      *pgxpool.Pool
	Completer *stubCompleter
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// stubCompleter stands in for the chat-completions endpoint. Tests set
// Reply or Err to script the model's behavior.
type stubCompleter struct {
	mu      sync.Mutex
	Reply   string
	Err     error
	lastReq provider.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req provider.CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReq = req
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

func (s *stubCompleter) LastRequest() provider.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReq
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	impressionRepo := impressionrepo.New(pool)
	categoryRepo := categoryrepo.New(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtMgr,
		config.AuthConfig{
			JWTSecret:        jwtSecret,
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 4,
		},
	)

	journalService := journal.NewService(logger, impressionRepo, categoryRepo, txm)

	completer := &stubCompleter{}
	quizService := quiz.NewService(logger, completer, quiz.Config{
		APIKey:      "test-key",
		MaxAttempts: 2,
		BackoffBase: time.Millisecond,
	})

	mux := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Impressions: rest.NewImpressionHandler(journalService, logger),
		Categories:  rest.NewCategoryHandler(journalService, logger),
		Quiz:        rest.NewQuizHandler(quizService, journalService, logger),
		Health:      rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:       srv.URL,
		Client:    srv.Client(),
		Pool:      pool,
		Completer: completer,
	}
}

// doJSON sends a JSON request and returns status + decoded body. A nil body
// sends no payload; a nil result map means the response had no JSON body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
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
	defer resp.Body.Close()

	var result map[string]any
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			result = nil
		}
	}
	return resp.StatusCode, result
}

var userSeq int
var userSeqMu sync.Mutex

// registerUser creates a fresh account through the API and returns the
// access token, refresh token, and email.
func registerUser(t *testing.T, ts *testServer) (access, refresh, email string) {
	t.Helper()

	userSeqMu.Lock()
	userSeq++
	email = fmt.Sprintf("e2e-user-%d-%d@example.com", userSeq, time.Now().UnixNano())
	userSeqMu.Unlock()

	status, result := ts.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email":    email,
		"name":     "E2E User",
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register failed: %v", result)

	access, _ = result["accessToken"].(string)
	refresh, _ = result["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh, email
}

// createImpression creates an impression through the API and returns its ID.
func createImpression(t *testing.T, ts *testServer, token, description string, categories []int) string {
	t.Helper()

	status, result := ts.doJSON(t, http.MethodPost, "/impressions", map[string]any{
		"description": description,
		"dateTime":    time.Now().Add(-time.Hour).Format(time.RFC3339),
		"categories":  categories,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create impression failed: %v", result)

	id, _ := result["id"].(string)
	require.NotEmpty(t, id)
	return id
}
