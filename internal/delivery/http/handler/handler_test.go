package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projectlink/internal/database/seeder"
	"projectlink/internal/delivery/http/middleware"
	"projectlink/internal/infrastructure/kv"
	"projectlink/internal/repository"
	"projectlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

type clientCount int

func (c clientCount) ClientCount() int { return int(c) }

func newTestApp(t *testing.T) (*fiber.App, *kv.Store) {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	store := kv.NewStore(kv.NewMemory(), logger)
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}.Run(context.Background(), store))

	users := repository.NewKVUserRepository(store)
	sessions := repository.NewKVSessionRepository(store)
	projects := repository.NewKVProjectRepository(store)
	peers := repository.NewKVPeerRepository(store)
	mentors := repository.NewKVMentorRepository(store)
	joined := repository.NewKVJoinedRepository(store)
	chats := repository.NewKVChatRepository(store)
	clock := usecase.NewClock(func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) })

	projectUC := usecase.NewProjectUsecase(projects, users, peers, mentors, clock)
	membershipUC := usecase.NewMembershipUsecase(usecase.MembershipDeps{
		Projects: projects,
		Joined:   joined,
		Chats:    chats,
		Sessions: sessions,
		Users:    users,
		Peers:    peers,
		Mentors:  mentors,
		Clock:    clock,
	})

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	NewHealthHandler(store, "memory", clientCount(2)).RegisterRoutes(app)
	api := app.Group("/api/v1")
	NewSessionHandler(usecase.NewSessionUsecase(users, sessions, clock)).RegisterRoutes(api)
	NewProjectHandler(projectUC, membershipUC).RegisterRoutes(api)
	NewRecommendationHandler(usecase.NewRecommendationUsecase(users, projects, peers, mentors, 3)).RegisterRoutes(api)
	NewChatHandler(usecase.NewChatUsecase(chats, users, projects, clock)).RegisterRoutes(api)
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path string, body any) envelope {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, resp.StatusCode, env.Status)
	return env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func onboard(t *testing.T, app *fiber.App) {
	t.Helper()
	env := do(t, app, http.MethodPost, "/api/v1/session/onboarding", map[string]any{
		"name":            "Dana",
		"email":           "dana@example.com",
		"skills":          []string{"react", "typescript"},
		"experienceLevel": "intermediate",
	})
	require.Equal(t, http.StatusCreated, env.Status)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	env := do(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, env.Status)

	st := decode[map[string]any](t, env.Data)
	assert.Equal(t, "memory", st["store_driver"])
	assert.Equal(t, true, st["store_healthy"])
	assert.EqualValues(t, 2, st["ws_clients"])
}

func TestSession_AnonymousFlow(t *testing.T) {
	app, _ := newTestApp(t)

	env := do(t, app, http.MethodGet, "/api/v1/session/user", nil)
	assert.Equal(t, http.StatusUnauthorized, env.Status)

	env = do(t, app, http.MethodGet, "/api/v1/session/state", nil)
	assert.Equal(t, http.StatusOK, env.Status)
	assert.Equal(t, "anonymous", decode[map[string]any](t, env.Data)["state"])

	env = do(t, app, http.MethodGet, "/api/v1/session/navigate?route=/projects", nil)
	nav := decode[map[string]any](t, env.Data)
	assert.Equal(t, "redirect_signin", nav["decision"])
	assert.Equal(t, "/signin", nav["redirect"])
}

func TestSession_OnboardingThenSignIn(t *testing.T) {
	app, _ := newTestApp(t)
	onboard(t, app)

	env := do(t, app, http.MethodGet, "/api/v1/session/state", nil)
	assert.Equal(t, "authenticated_complete", decode[map[string]any](t, env.Data)["state"])

	env = do(t, app, http.MethodGet, "/api/v1/session/navigate?route=/onboarding", nil)
	assert.Equal(t, "redirect_home", decode[map[string]any](t, env.Data)["decision"])

	env = do(t, app, http.MethodDelete, "/api/v1/session", nil)
	assert.Equal(t, http.StatusOK, env.Status)

	env = do(t, app, http.MethodPost, "/api/v1/session/signin", map[string]string{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusUnauthorized, env.Status)
}

func TestSession_OnboardingValidation(t *testing.T) {
	app, _ := newTestApp(t)
	env := do(t, app, http.MethodPost, "/api/v1/session/onboarding", map[string]any{
		"name":            " ",
		"experienceLevel": "guru",
	})
	assert.Equal(t, http.StatusBadRequest, env.Status)
	assert.NotEmpty(t, env.Errors)
}

func TestSession_MalformedBody(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/signin", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProjects_FilterAndEntities(t *testing.T) {
	app, _ := newTestApp(t)

	env := do(t, app, http.MethodGet, "/api/v1/projects?type=group", nil)
	require.Equal(t, http.StatusOK, env.Status)
	items := decode[[]map[string]any](t, env.Data)
	require.Len(t, items, 2)
	assert.Equal(t, "proj1", items[0]["id"])
	assert.Equal(t, "proj3", items[1]["id"])

	env = do(t, app, http.MethodGet, "/api/v1/projects?type=huge", nil)
	assert.Equal(t, http.StatusBadRequest, env.Status)

	env = do(t, app, http.MethodGet, "/api/v1/entities/mentors", nil)
	require.Equal(t, http.StatusOK, env.Status)
	assert.Len(t, decode[map[string]any](t, env.Data)["members"], 2)

	env = do(t, app, http.MethodGet, "/api/v1/entities/users", nil)
	require.Equal(t, http.StatusOK, env.Status)
	users := decode[map[string]any](t, env.Data)
	require.Contains(t, users, "users")
	assert.Empty(t, users["users"])

	env = do(t, app, http.MethodGet, "/api/v1/entities/widgets", nil)
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestProjects_CreateJoinLeave(t *testing.T) {
	app, _ := newTestApp(t)
	onboard(t, app)

	env := do(t, app, http.MethodPost, "/api/v1/projects", map[string]any{
		"title":         "Compiler",
		"description":   "A tiny compiler",
		"skills":        []string{"go"},
		"type":          "solo",
		"requiredLevel": "advanced",
	})
	require.Equal(t, http.StatusCreated, env.Status)
	created := decode[map[string]any](t, env.Data)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "not-started", created["status"])

	env = do(t, app, http.MethodPost, "/api/v1/projects/"+id+"/join", nil)
	require.Equal(t, http.StatusOK, env.Status)
	res := decode[map[string]any](t, env.Data)
	assert.Equal(t, true, res["joined"])

	env = do(t, app, http.MethodPost, "/api/v1/projects/"+id+"/join", nil)
	assert.Equal(t, "Already joined", env.Message)

	env = do(t, app, http.MethodGet, "/api/v1/projects/joined", nil)
	assert.Len(t, decode[[]map[string]any](t, env.Data), 1)

	env = do(t, app, http.MethodDelete, "/api/v1/projects/"+id+"/join", nil)
	require.Equal(t, http.StatusOK, env.Status)

	env = do(t, app, http.MethodGet, "/api/v1/projects/joined", nil)
	assert.Empty(t, decode[[]map[string]any](t, env.Data))

	env = do(t, app, http.MethodPost, "/api/v1/projects/missing/join", nil)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestRecommendations(t *testing.T) {
	app, _ := newTestApp(t)

	env := do(t, app, http.MethodGet, "/api/v1/recommendations/peer", nil)
	require.Equal(t, http.StatusOK, env.Status)
	empty := decode[map[string]any](t, env.Data)
	require.Contains(t, empty, "members")
	assert.Empty(t, empty["members"])

	onboard(t, app)
	env = do(t, app, http.MethodGet, "/api/v1/recommendations/peer?limit=1", nil)
	require.Equal(t, http.StatusOK, env.Status)
	members := decode[struct {
		Members []struct {
			Item  map[string]any `json:"item"`
			Score int            `json:"score"`
		} `json:"members"`
	}](t, env.Data).Members
	require.Len(t, members, 1)
	assert.Equal(t, "p1", members[0].Item["id"])

	env = do(t, app, http.MethodGet, "/api/v1/recommendations/peer?limit=x", nil)
	assert.Equal(t, http.StatusBadRequest, env.Status)

	env = do(t, app, http.MethodGet, "/api/v1/recommendations/robot", nil)
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestChat_MessagesAndRoster(t *testing.T) {
	app, _ := newTestApp(t)

	env := do(t, app, http.MethodPost, "/api/v1/chats/chat_p1/messages", map[string]string{"text": "hi"})
	assert.Equal(t, http.StatusUnauthorized, env.Status)

	onboard(t, app)
	env = do(t, app, http.MethodPost, "/api/v1/chats/chat_p1/messages", map[string]string{"text": "hi"})
	require.Equal(t, http.StatusCreated, env.Status)

	env = do(t, app, http.MethodGet, "/api/v1/chats/chat_p1/messages", nil)
	hist := decode[map[string]any](t, env.Data)
	assert.Len(t, hist["messages"], 1)

	env = do(t, app, http.MethodGet, "/api/v1/chats/nonsense/messages", nil)
	assert.Equal(t, http.StatusBadRequest, env.Status)

	env = do(t, app, http.MethodPost, "/api/v1/groups/proj3/members", map[string]string{"id": "p9", "name": "Zed"})
	require.Equal(t, http.StatusOK, env.Status)
	roster := decode[map[string]any](t, env.Data)["members"].([]any)
	require.NotEmpty(t, roster)

	env = do(t, app, http.MethodDelete, "/api/v1/groups/proj3/members/p9", nil)
	require.Equal(t, http.StatusOK, env.Status)
	for _, m := range decode[map[string]any](t, env.Data)["members"].([]any) {
		assert.NotEqual(t, "p9", m.(map[string]any)["id"])
	}

	env = do(t, app, http.MethodPost, "/api/v1/groups/proj3/members", map[string]string{"id": "", "name": ""})
	assert.Equal(t, http.StatusBadRequest, env.Status)
}
