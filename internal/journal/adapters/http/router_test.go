package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	journalhttp "devjournal/internal/journal/adapters/http"
	"devjournal/internal/journal/adapters/http/auth"
	"devjournal/internal/journal/adapters/memory"
	adapters "devjournal/internal/journal/adapters/services"
	"devjournal/internal/journal/adapters/session"
	"devjournal/internal/journal/adapters/snapshot"
	"devjournal/internal/journal/app"
)

const cookieName = "journal_session"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.Open(context.Background(), snapshot.NewFileStore(filepath.Join(t.TempDir(), "data.json")))
	repos := memory.NewRepositoryFactory(store)
	sessions := app.NewSessionAuthenticator(
		session.NewMemoryRepository(nil),
		adapters.NewSessionTokenJWT("test-secret", nil),
		app.DefaultSessionTTL,
		nil,
	)

	fiberApp := journalhttp.NewApp(fiber.Config{})
	journalhttp.SetupRouter(fiberApp, journalhttp.Dependencies{
		Auth:      app.NewAuthUseCase(repos.UserRepository(), adapters.NewBcrypt(bcrypt.MinCost), sessions),
		Sessions:  sessions,
		Insights:  app.NewInsightUseCase(repos.InsightRepository()),
		Diary:     app.NewDiaryUseCase(repos.DiaryEntryRepository()),
		Tutorials: app.NewTutorialUseCase(repos.TutorialRepository()),
		Cookie:    auth.CookieSettings{Name: cookieName},
	})
	return fiberApp
}

func doJSON(t *testing.T, a *fiber.App, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func register(t *testing.T, a *fiber.App, username string) string {
	t.Helper()

	resp, body := doJSON(t, a, http.MethodPost, "/api/auth/register",
		map[string]any{"username": username, "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestAuthFlow(t *testing.T) {
	a := newTestApp(t)

	resp, body := doJSON(t, a, http.MethodPost, "/api/auth/register",
		map[string]any{"username": "alice", "password": "secret1", "email": "alice@example.com"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.NotContains(t, string(body), "password")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == cookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie is set")
	assert.True(t, cookie.HttpOnly)

	// Повторная регистрация.
	resp, body = doJSON(t, a, http.MethodPost, "/api/auth/register",
		map[string]any{"username": "alice", "password": "secret1"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"username already exists"}`, string(body))

	// Текущий пользователь по cookie.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie.Value})
	userResp, err := a.Test(req)
	require.NoError(t, err)
	defer userResp.Body.Close()
	require.Equal(t, http.StatusOK, userResp.StatusCode)

	var user map[string]any
	require.NoError(t, json.NewDecoder(userResp.Body).Decode(&user))
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password")

	// Вход.
	resp, _ = doJSON(t, a, http.MethodPost, "/api/auth/login",
		map[string]any{"username": "alice", "password": "wrong-pass"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, a, http.MethodPost, "/api/auth/login",
		map[string]any{"username": "alice", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))

	// Выход завершает только свою сессию.
	resp, _ = doJSON(t, a, http.MethodPost, "/api/auth/logout", nil, login.Token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, a, http.MethodGet, "/api/auth/user", nil, login.Token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, a, http.MethodGet, "/api/auth/user", nil, cookie.Value)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "short password", body: map[string]any{"username": "bob", "password": "123"}, wantStatus: http.StatusBadRequest},
		{name: "missing username", body: map[string]any{"password": "secret1"}, wantStatus: http.StatusBadRequest},
		{name: "malformed body", body: "not an object", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, a, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(body))
			assert.Contains(t, string(body), `"error"`)
		})
	}
}

func TestInsightsCRUD(t *testing.T) {
	a := newTestApp(t)
	token := register(t, a, "alice")

	resp, _ := doJSON(t, a, http.MethodPost, "/api/insights",
		map[string]any{"title": "T", "excerpt": "E", "content": "C"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "mutations require a session")

	resp, body := doJSON(t, a, http.MethodPost, "/api/insights",
		map[string]any{"title": "Generics", "excerpt": "E", "content": "C", "tags": []string{"go"}}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEmpty(t, created["publishedAt"])

	resp, body = doJSON(t, a, http.MethodPatch, "/api/insights/"+id, map[string]any{"title": "Generics in Go"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var updated map[string]any
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Generics in Go", updated["title"])
	assert.Equal(t, "E", updated["excerpt"])
	assert.Equal(t, created["publishedAt"], updated["publishedAt"])

	resp, _ = doJSON(t, a, http.MethodPatch, "/api/insights/"+id, map[string]any{"content": ""}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, a, http.MethodGet, "/api/insights", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)

	resp, _ = doJSON(t, a, http.MethodDelete, "/api/insights/"+id, nil, token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, a, http.MethodDelete, "/api/insights/"+id, nil, token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "delete is idempotent")

	resp, body = doJSON(t, a, http.MethodGet, "/api/insights/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"not found"}`, string(body))

	resp, _ = doJSON(t, a, http.MethodPatch, "/api/insights/"+id, map[string]any{"title": "x"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContentMutationsRequireSession(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		create map[string]any
		patch  map[string]any
	}{
		{
			name:   "insights",
			path:   "/api/insights",
			create: map[string]any{"title": "A", "excerpt": "E", "content": "C"},
			patch:  map[string]any{"title": "changed"},
		},
		{
			name:   "diary",
			path:   "/api/diary",
			create: map[string]any{"title": "A", "content": "C"},
			patch:  map[string]any{"title": "changed"},
		},
		{
			name: "tutorials",
			path: "/api/tutorials",
			create: map[string]any{
				"title": "A", "description": "D", "content": "C",
				"language": "go", "difficulty": "beginner", "duration": "5 min",
			},
			patch: map[string]any{"title": "changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			token := register(t, a, "alice")

			resp, body := doJSON(t, a, http.MethodPost, tt.path, tt.create, token)
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
			var created map[string]any
			require.NoError(t, json.Unmarshal(body, &created))
			id, _ := created["id"].(string)
			require.NotEmpty(t, id)

			for _, bad := range []string{"", "not-a-session-token"} {
				resp, body = doJSON(t, a, http.MethodPost, tt.path, tt.create, bad)
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "POST with %q", bad)
				assert.JSONEq(t, `{"error":"unauthorized"}`, string(body))

				resp, _ = doJSON(t, a, http.MethodPatch, tt.path+"/"+id, tt.patch, bad)
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "PATCH with %q", bad)

				resp, _ = doJSON(t, a, http.MethodDelete, tt.path+"/"+id, nil, bad)
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "DELETE with %q", bad)
			}

			resp, body = doJSON(t, a, http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var list []map[string]any
			require.NoError(t, json.Unmarshal(body, &list))
			require.Len(t, list, 1, "rejected requests must not change the collection")
			assert.Equal(t, id, list[0]["id"])
			assert.Equal(t, "A", list[0]["title"])
		})
	}
}

func TestCurrentUserRequiresSession(t *testing.T) {
	a := newTestApp(t)
	token := register(t, a, "alice")

	resp, body := doJSON(t, a, http.MethodGet, "/api/auth/user", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"username":"alice"`)

	resp, body = doJSON(t, a, http.MethodGet, "/api/auth/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"unauthorized"}`, string(body))
}

func TestDiaryAndTutorials(t *testing.T) {
	a := newTestApp(t)
	token := register(t, a, "alice")

	resp, body := doJSON(t, a, http.MethodPost, "/api/diary",
		map[string]any{"title": "Day 1", "content": "Started"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(t, []any{}, entry["tags"])
	assert.NotEmpty(t, entry["date"])

	resp, body = doJSON(t, a, http.MethodPost, "/api/tutorials", map[string]any{
		"title": "Channels", "description": "D", "content": "C",
		"language": "go", "difficulty": "expert", "duration": "10 min",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "difficulty")

	resp, body = doJSON(t, a, http.MethodPost, "/api/tutorials", map[string]any{
		"title": "Channels", "description": "D", "content": "C",
		"language": "go", "difficulty": "beginner", "duration": "10 min",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = doJSON(t, a, http.MethodGet, "/api/tutorials", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tutorials []map[string]any
	require.NoError(t, json.Unmarshal(body, &tutorials))
	require.Len(t, tutorials, 1)
	assert.Equal(t, "beginner", tutorials[0]["difficulty"])
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t)

	resp, body := doJSON(t, a, http.MethodGet, "/api/unknown", nil, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"route not found"}`, string(body))
}
