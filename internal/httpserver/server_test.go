package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/mw"
	"github.com/MrSnakeDoc/makerhub/internal/logger"
	"github.com/MrSnakeDoc/makerhub/internal/persist"
	"github.com/MrSnakeDoc/makerhub/internal/session"
	"github.com/MrSnakeDoc/makerhub/internal/store/memory"
)

func testDeps(t *testing.T, slot persist.Slot) deps.Deps {
	t.Helper()
	log := logger.NewNop()
	holder := catalog.NewHolder(catalog.Default())

	var p session.Persistence
	if slot != nil {
		p = persist.NewAdapter(slot, log)
	}

	return deps.Deps{
		Logger:         log,
		StartTime:      time.Now(),
		Version:        "test",
		RequestTimeout: 5 * time.Second,
		RateLimit:      mw.RateLimitConfig{Burst: 1000, PerMinute: 1000},
		Session:        session.New(holder, p, log),
		Catalog:        holder,
		Slot:           slot,
		ReloadTrigger:  make(chan struct{}, 1),
	}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type award struct {
	Changed  bool   `json:"changed"`
	Points   int    `json:"points"`
	Badge    string `json:"badge"`
	NewBadge bool   `json:"newBadge"`
}

type cartView struct {
	Lines []struct {
		ID       string `json:"id"`
		Qty      int    `json:"qty"`
		Subtotal int    `json:"subtotal"`
	} `json:"lines"`
	Count      int    `json:"count"`
	Total      int    `json:"total"`
	TotalLabel string `json:"totalLabel"`
}

type rank struct {
	Current struct {
		Key string `json:"key"`
	} `json:"current"`
	Next struct {
		Key string `json:"key"`
	} `json:"next"`
	Progress int `json:"progressPercent"`
	ToNext   int `json:"toNext"`
}

func TestHealthz(t *testing.T) {
	h := httpserver.NewRouter(testDeps(t, memory.NewSlot()))

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.Equal(t, "makerhub", body["service"])
}

type downSlot struct{ memory.Slot }

func (*downSlot) Name() string                        { return "redis:makerhub_state" }
func (*downSlot) Ping(context.Context) error          { return errors.New("connection refused") }
func (*downSlot) Write(context.Context, []byte) error { return errors.New("connection refused") }

func TestReadyz(t *testing.T) {
	h := httpserver.NewRouter(testDeps(t, memory.NewSlot()))
	rec := do(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]any](t, rec)["ready"])

	h = httpserver.NewRouter(testDeps(t, &downSlot{}))
	rec = do(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, false, body["ready"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestInfra(t *testing.T) {
	d := testDeps(t, &downSlot{})
	h := httpserver.NewRouter(d)

	rec := do(t, h, http.MethodPost, "/api/cart/p1", "")
	require.Equal(t, http.StatusOK, rec.Code, "a failed save never fails the request")

	rec = do(t, h, http.MethodGet, "/infra", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status     string `json:"status"`
		Components map[string]struct {
			OK      bool   `json:"ok"`
			Backend string `json:"backend"`
			Courses *int   `json:"courses"`
		} `json:"components"`
		Session struct {
			Points    int    `json:"points"`
			Rank      string `json:"rank"`
			CartLines int    `json:"cart_lines"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.False(t, body.Components["store"].OK)
	assert.Equal(t, "redis:makerhub_state", body.Components["store"].Backend)
	assert.True(t, body.Components["catalog"].OK)
	require.NotNil(t, body.Components["catalog"].Courses)
	assert.Equal(t, 4, *body.Components["catalog"].Courses)
	assert.Equal(t, 5, body.Session.Points)
	assert.Equal(t, "Explorer", body.Session.Rank)
	assert.Equal(t, 1, body.Session.CartLines)
}

func TestPrivateRoutesRespectCIDRs(t *testing.T) {
	d := testDeps(t, memory.NewSlot())
	d.AllowedCIDRS = []string{"10.0.0.0/8"}
	d.TrustProxy = false
	h := httpserver.NewRouter(d)

	// httptest requests come from 192.0.2.1.
	for _, path := range []string{"/readyz", "/infra"} {
		assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodGet, path, "").Code, path)
	}
	assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodPost, "/reload", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "").Code)
}

func TestReload(t *testing.T) {
	d := testDeps(t, memory.NewSlot())
	h := httpserver.NewRouter(d)

	assert.Equal(t, http.StatusAccepted, do(t, h, http.MethodPost, "/reload", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/reload", "").Code)

	select {
	case <-d.ReloadTrigger:
	default:
		t.Fatal("reload was not triggered")
	}

	d.ReloadTrigger = nil
	h = httpserver.NewRouter(d)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, h, http.MethodPost, "/reload", "").Code)
}

func TestSessionFlow(t *testing.T) {
	slot := memory.NewSlot()
	h := httpserver.NewRouter(testDeps(t, slot))

	rec := do(t, h, http.MethodPost, "/api/courses/c1/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	toggled := decode[struct {
		Enrollment struct {
			Done bool `json:"done"`
		} `json:"enrollment"`
		Award award `json:"award"`
	}](t, rec)
	assert.True(t, toggled.Enrollment.Done)
	assert.Equal(t, award{Changed: true, Points: 80, Badge: "firstCourse", NewBadge: true}, toggled.Award)

	rec = do(t, h, http.MethodPost, "/api/quiz", `{"answer": true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	quiz := decode[struct {
		Correct bool  `json:"correct"`
		Award   award `json:"award"`
	}](t, rec)
	assert.True(t, quiz.Correct)
	assert.Equal(t, 50, quiz.Award.Points)

	rec = do(t, h, http.MethodPost, "/api/threads", `{"title": "Servo jitter", "body": "Any tips?"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	thread := decode[struct {
		Thread struct {
			ID     string `json:"id"`
			Author string `json:"author"`
		} `json:"thread"`
		Award award `json:"award"`
	}](t, rec)
	assert.True(t, strings.HasPrefix(thread.Thread.ID, "f"))
	assert.Equal(t, "Guest Maker", thread.Thread.Author)
	assert.Equal(t, 20, thread.Award.Points)

	rec = do(t, h, http.MethodPost, "/api/cart/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	do(t, h, http.MethodPost, "/api/cart/p1", "")
	rec = do(t, h, http.MethodPost, "/api/cart/p2", "")
	cart := decode[struct {
		Award award    `json:"award"`
		Cart  cartView `json:"cart"`
	}](t, rec)
	assert.Equal(t, 5, cart.Award.Points)
	assert.Equal(t, 567, cart.Cart.Total)
	assert.Equal(t, "₹567", cart.Cart.TotalLabel)
	assert.Equal(t, 3, cart.Cart.Count)

	rec = do(t, h, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[struct {
		Page    string `json:"page"`
		Profile struct {
			Points int             `json:"points"`
			Badges map[string]bool `json:"badges"`
		} `json:"profile"`
		Posts     []json.RawMessage `json:"posts"`
		Rank      rank              `json:"rank"`
		CartCount int               `json:"cartCount"`
		CartTotal int               `json:"cartTotal"`
	}](t, rec)
	assert.Equal(t, "home", state.Page)
	assert.Equal(t, 80+50+20+15, state.Profile.Points)
	assert.Len(t, state.Profile.Badges, 4)
	assert.Len(t, state.Posts, 3)
	assert.Equal(t, "tinkerer", state.Rank.Current.Key)
	assert.Equal(t, 3, state.CartCount)
	assert.Equal(t, 567, state.CartTotal)

	rec = do(t, h, http.MethodDelete, "/api/cart/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	removed := decode[struct {
		Changed bool     `json:"changed"`
		Cart    cartView `json:"cart"`
	}](t, rec)
	assert.True(t, removed.Changed)
	assert.Equal(t, 89, removed.Cart.Total)

	assert.Equal(t, 7, slot.Writes())
}

func TestValidationErrors(t *testing.T) {
	slot := memory.NewSlot()
	h := httpserver.NewRouter(testDeps(t, slot))

	tests := []struct {
		name, method, path, body, field string
	}{
		{"thread without title", http.MethodPost, "/api/threads", `{"title": " ", "body": "b"}`, "title"},
		{"thread without body", http.MethodPost, "/api/threads", `{"title": "t"}`, "body"},
		{"idea without title", http.MethodPost, "/api/ideas", `{}`, "title"},
		{"quiz without answer", http.MethodPost, "/api/quiz", `{}`, "answer"},
		{"malformed body", http.MethodPost, "/api/ideas", `{"title":`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode[map[string]any](t, rec)
			assert.NotEmpty(t, body["error"])
			if tt.field != "" {
				assert.Equal(t, tt.field, body["field"])
			}
		})
	}
	assert.Zero(t, slot.Writes(), "rejections must not persist")
}

func TestNoOps(t *testing.T) {
	slot := memory.NewSlot()
	h := httpserver.NewRouter(testDeps(t, slot))

	tests := []struct {
		method, path, body string
	}{
		{http.MethodPut, "/api/view", `{"view": "nowhere"}`},
		{http.MethodPost, "/api/threads/missing/like", ""},
		{http.MethodPost, "/api/ideas/missing/upvote", ""},
		{http.MethodDelete, "/api/cart/p1", ""},
	}
	for _, tt := range tests {
		rec := do(t, h, tt.method, tt.path, tt.body)
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.Equal(t, false, decode[map[string]any](t, rec)["changed"], tt.path)
	}

	rec := do(t, h, http.MethodPost, "/api/cart/p404", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[struct {
		Award award `json:"award"`
	}](t, rec).Award.Changed)

	rec = do(t, h, http.MethodPost, "/api/courses/c404/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Zero(t, slot.Writes())
}

func TestViewProfileAndReset(t *testing.T) {
	h := httpserver.NewRouter(testDeps(t, memory.NewSlot()))

	rec := do(t, h, http.MethodPut, "/api/view", `{"view": "shop"}`)
	assert.Equal(t, map[string]any{"changed": true, "page": "shop"}, decode[map[string]any](t, rec))

	rec = do(t, h, http.MethodPut, "/api/profile/name", `{"name": "  Riya "}`)
	assert.Equal(t, map[string]any{"changed": true, "name": "Riya"}, decode[map[string]any](t, rec))

	do(t, h, http.MethodPost, "/api/ideas", `{"title": "Solar lamp"}`)

	rec = do(t, h, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[struct {
		Name   string `json:"name"`
		Points int    `json:"points"`
		Badges []struct {
			Key    string `json:"key"`
			Label  string `json:"label"`
			Earned bool   `json:"earned"`
		} `json:"badges"`
	}](t, rec)
	assert.Equal(t, "Riya", profile.Name)
	assert.Equal(t, 25, profile.Points)
	require.Len(t, profile.Badges, 5)
	for _, b := range profile.Badges {
		assert.Equal(t, b.Key == "contributor", b.Earned, b.Key)
		assert.NotEmpty(t, b.Label)
	}

	rec = do(t, h, http.MethodGet, "/api/ideas", "")
	ideas := decode[[]struct {
		Title string `json:"title"`
		Votes int    `json:"votes"`
	}](t, rec)
	require.Len(t, ideas, 4)
	assert.Equal(t, "Solar lamp", ideas[0].Title)
	assert.Equal(t, 1, ideas[0].Votes)

	rec = do(t, h, http.MethodDelete, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[map[string]any](t, rec)
	assert.Equal(t, "home", state["page"])
	assert.Equal(t, float64(0), state["profile"].(map[string]any)["points"])
}

func TestRank(t *testing.T) {
	h := httpserver.NewRouter(testDeps(t, memory.NewSlot()))

	tests := []struct {
		query    string
		current  string
		next     string
		progress int
	}{
		{"", "explorer", "tinkerer", 0},
		{"?points=50", "explorer", "tinkerer", 50},
		{"?points=450", "builder", "innovator", 38},
		{"?points=1200", "visionary", "visionary", 0},
		{"?points=-5", "explorer", "tinkerer", 0},
	}
	for _, tt := range tests {
		rec := do(t, h, http.MethodGet, "/api/rank"+tt.query, "")
		require.Equal(t, http.StatusOK, rec.Code, tt.query)
		r := decode[rank](t, rec)
		assert.Equal(t, tt.current, r.Current.Key, tt.query)
		assert.Equal(t, tt.next, r.Next.Key, tt.query)
		assert.Equal(t, tt.progress, r.Progress, tt.query)
	}

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/rank?points=lots", "").Code)
}

func TestCatalogHidesQuizAnswer(t *testing.T) {
	h := httpserver.NewRouter(testDeps(t, memory.NewSlot()))

	rec := do(t, h, http.MethodGet, "/api/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)

	assert.Len(t, body["courses"], 4)
	assert.Len(t, body["products"], 6)
	assert.Len(t, body["ranks"], 5)
	quiz := body["quiz"].(map[string]any)
	assert.NotEmpty(t, quiz["question"])
	assert.NotContains(t, quiz, "answer")
	assert.NotContains(t, body, "samplePosts")
}

func TestAPIGuards(t *testing.T) {
	d := testDeps(t, memory.NewSlot())
	d.AllowedHosts = []string{"makerhub.example.com"}
	d.CORSOrigins = []string{"https://makerhub.example.com"}
	d.RateLimit = mw.RateLimitConfig{Burst: 2, PerMinute: 1}
	h := httpserver.NewRouter(d)

	// httptest requests use Host example.com.
	assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodGet, "/api/state", "").Code)

	get := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/api/state", nil)
		r.Host = "makerhub.example.com"
		r.Header.Set("Origin", "https://makerhub.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec
	}

	rec := get()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://makerhub.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))

	assert.Equal(t, http.StatusOK, get().Code)
	assert.Equal(t, http.StatusTooManyRequests, get().Code)
}
