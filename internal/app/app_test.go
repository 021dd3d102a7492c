package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/teamboard/internal/config"
)

// TestEnvironment содержит фейковый внешний API и запущенное приложение
type TestEnvironment struct {
	Upstream *httptest.Server
	Server   *httptest.Server
	Client   *http.Client
}

// newFakeUpstream поднимает внешний API с фиксированными данными
func newFakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	write := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}

	r := chi.NewRouter()
	r.Get("/api/users", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[
			{"id":1,"username":"alice","email":"alice@example.com","team_id":1,"group_id":10},
			{"id":2,"username":"bob","email":"bob@example.com","team_id":null,"group_id":null}
		]`)
	})
	r.Get("/api/teams", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[{"id":1,"name":"core"},{"id":2,"name":"infra"}]`)
	})
	r.Get("/api/groups", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[{"id":10,"name":"backend","team_id":1},{"id":20,"name":"broken","team_id":2}]`)
	})
	r.Get("/api/teams/1/users", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[{"id":1,"username":"alice","email":"alice@example.com","team_id":1,"group_id":10}]`)
	})
	r.Get("/api/teams/2/users", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[]`)
	})
	r.Get("/api/teams/{id}/groups", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "1" {
			write(w, http.StatusOK, `[{"id":10,"name":"backend","team_id":1}]`)
			return
		}
		write(w, http.StatusOK, `[]`)
	})
	r.Get("/api/teams/1/groups/10/users", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[{"id":1,"username":"alice","email":"alice@example.com","team_id":1,"group_id":10}]`)
	})
	r.Get("/api/groups/10/users", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, `[{"id":1,"username":"alice","email":"alice@example.com","team_id":1,"group_id":10}]`)
	})
	r.Get("/api/groups/20/users", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusInternalServerError, `{"error":"database unavailable"}`)
	})
	r.Post("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		switch {
		case req.Username != "alice":
			write(w, http.StatusNotFound, `{"error":"User not found"}`)
		case req.Password != "secret":
			write(w, http.StatusUnauthorized, `{"error":"Invalid password"}`)
		default:
			write(w, http.StatusOK, `{"id":1,"username":"alice","email":"alice@example.com","password":"secret"}`)
		}
	})
	r.Post("/api/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		if req.Username == "alice" {
			write(w, http.StatusBadRequest, `{"error":"Username already exists"}`)
			return
		}
		write(w, http.StatusCreated, `{"user":{"id":3,"username":"`+req.Username+`","email":"`+req.Email+`"},"token":"abc"}`)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// SetupTestEnvironment создает приложение поверх фейкового внешнего API
func SetupTestEnvironment(t *testing.T, authRequired bool) *TestEnvironment {
	t.Helper()

	upstream := newFakeUpstream(t)

	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		API:     config.APIConfig{BaseURL: upstream.URL, Timeout: 5 * time.Second},
		Session: config.SessionConfig{Secret: "test-secret", ExpirationHours: 1, CookieName: "teamboard_session", AuthRequired: authRequired},
		Locale:  config.LocaleConfig{Default: "zh", Fallback: "en"},
		Log:     config.LogConfig{Level: "error"},
	}
	require.NoError(t, cfg.Validate())

	application, err := NewWithLogOutput(cfg, io.Discard)
	require.NoError(t, err)
	require.NoError(t, application.Initialize(context.Background()))

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &TestEnvironment{
		Upstream: upstream,
		Server:   srv,
		Client: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
			// Редиректы проверяем вручную
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Get выполняет GET и возвращает статус и тело
func (te *TestEnvironment) Get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := te.Client.Get(te.Server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// PostForm отправляет форму и возвращает статус и тело
func (te *TestEnvironment) PostForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	resp, err := te.Client.PostForm(te.Server.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (te *TestEnvironment) login(t *testing.T) {
	t.Helper()

	resp, _ := te.PostForm(t, "/login", url.Values{"username": {"alice"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

type sectionJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Error     string `json:"error"`
	EmptyText string `json:"empty_text"`
	Columns   []string
	Rows      [][]struct {
		Text string `json:"text"`
		Href string `json:"href"`
	} `json:"rows"`
}

func TestE2E_LoginAndDashboard(t *testing.T) {
	env := SetupTestEnvironment(t, true)

	t.Run("Health", func(t *testing.T) {
		resp, body := env.Get(t, "/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, body)
	})

	t.Run("Dashboard requires login", func(t *testing.T) {
		resp, _ := env.Get(t, "/")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))

		resp, _ = env.Get(t, "/fragments/users")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown user", func(t *testing.T) {
		resp, body := env.PostForm(t, "/login", url.Values{"username": {"mallory"}, "password": {"x"}})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "用户不存在")
		assert.Contains(t, body, `value="mallory"`)
	})

	t.Run("Wrong password", func(t *testing.T) {
		resp, body := env.PostForm(t, "/login", url.Values{"username": {"alice"}, "password": {"nope"}})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "用户名或密码错误")
	})

	t.Run("Empty form", func(t *testing.T) {
		resp, body := env.PostForm(t, "/login", url.Values{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "请检查填写的信息")
	})

	env.login(t)

	t.Run("Dashboard", func(t *testing.T) {
		resp, body := env.Get(t, "/")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Contains(t, body, "团队列表")
		assert.Contains(t, body, "组列表")
		assert.Contains(t, body, "所有用户列表")
		assert.Contains(t, body, "core")
		assert.Contains(t, body, "backend")
		assert.Contains(t, body, "alice@example.com")
		assert.Contains(t, body, "bob@example.com")
		assert.NotContains(t, body, "secret", "password never rendered")
		assert.Contains(t, body, "当前用户：alice")
	})

	t.Run("Login page redirects when logged in", func(t *testing.T) {
		resp, _ := env.Get(t, "/login")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	})

	t.Run("Team selected", func(t *testing.T) {
		_, body := env.Get(t, "/?team=1")
		assert.Contains(t, body, "团队 core 的成员")
		assert.Contains(t, body, "团队 core 的组")
		assert.Contains(t, body, `href="/?team=1&amp;group=10"`)
	})

	t.Run("Empty team", func(t *testing.T) {
		_, body := env.Get(t, "/?team=2")
		assert.Contains(t, body, "团队 infra 的成员")
		assert.Contains(t, body, "该团队没有成员")
		assert.Contains(t, body, "该团队没有组")
	})

	t.Run("Team group selected", func(t *testing.T) {
		_, body := env.Get(t, "/?team=1&group=10")
		assert.Contains(t, body, "团队 core 中组 backend 的成员")
	})

	t.Run("Group failure stays in its section", func(t *testing.T) {
		_, body := env.Get(t, "/?group=20")
		assert.Contains(t, body, "组 broken 的成员")
		assert.Contains(t, body, "获取组用户数据失败，请稍后再试")
		assert.Contains(t, body, "alice@example.com", "all-users section still rendered")
	})

	t.Run("Invalid selection is ignored", func(t *testing.T) {
		resp, body := env.Get(t, "/?team=abc")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotContains(t, body, `id="team-users"`)
	})
}

func TestE2E_Fragments(t *testing.T) {
	env := SetupTestEnvironment(t, true)
	env.login(t)

	getSection := func(t *testing.T, path string) sectionJSON {
		t.Helper()
		resp, body := env.Get(t, path)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)

		var s sectionJSON
		require.NoError(t, json.Unmarshal([]byte(body), &s))
		return s
	}

	t.Run("Users", func(t *testing.T) {
		s := getSection(t, "/fragments/users")
		assert.Equal(t, "users", s.ID)
		require.Len(t, s.Rows, 2)
		assert.Equal(t, "alice", s.Rows[0][1].Text)
		assert.Equal(t, "", s.Rows[1][3].Text, "missing team renders as empty cell")
	})

	t.Run("Team users with name", func(t *testing.T) {
		s := getSection(t, "/fragments/teams/1/users?name=core")
		assert.Equal(t, "团队 core 的成员", s.Title)
		assert.Len(t, s.Rows, 1)
	})

	t.Run("Empty team falls back to id in title", func(t *testing.T) {
		s := getSection(t, "/fragments/teams/2/users")
		assert.Equal(t, "团队 2 的成员", s.Title)
		assert.Empty(t, s.Rows)
		assert.Equal(t, "该团队没有成员", s.EmptyText)
	})

	t.Run("Team groups", func(t *testing.T) {
		s := getSection(t, "/fragments/teams/1/groups?name=core&lang=en")
		assert.Equal(t, "Groups of team core", s.Title)
		require.Len(t, s.Rows, 1)
		assert.Equal(t, "/?team=1&group=10", s.Rows[0][1].Href)
	})

	t.Run("Team group users", func(t *testing.T) {
		s := getSection(t, "/fragments/teams/1/groups/10/users?team_name=core&name=backend")
		assert.Equal(t, "团队 core 中组 backend 的成员", s.Title)
		assert.Len(t, s.Rows, 1)
	})

	t.Run("Group error", func(t *testing.T) {
		s := getSection(t, "/fragments/groups/20/users?name=broken")
		assert.Equal(t, "获取组用户数据失败，请稍后再试", s.Error)
		assert.Empty(t, s.Rows)
	})

	t.Run("Invalid id", func(t *testing.T) {
		resp, body := env.Get(t, "/fragments/teams/abc/users")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "BAD_REQUEST")
	})
}

func TestE2E_LocaleAndLogout(t *testing.T) {
	env := SetupTestEnvironment(t, true)
	env.login(t)

	resp, _ := env.Get(t, "/lang/en?next=%2F%3Fteam%3D2")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?team=2", resp.Header.Get("Location"))

	_, body := env.Get(t, "/?team=2")
	assert.Contains(t, body, "Members of team infra")
	assert.Contains(t, body, "This team has no members")
	assert.Contains(t, body, `<html lang="en">`)

	resp, _ = env.PostForm(t, "/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, _ = env.Get(t, "/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "session discarded on logout")
}

func TestE2E_Register(t *testing.T) {
	env := SetupTestEnvironment(t, true)

	resp, body := env.PostForm(t, "/register", url.Values{
		"username": {"carol"}, "email": {"carol@example.com"},
		"password": {"pw"}, "confirm_password": {"other"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `value="carol@example.com"`)

	resp, body = env.PostForm(t, "/register", url.Values{
		"username": {"alice"}, "email": {"alice@example.com"},
		"password": {"pw"}, "confirm_password": {"pw"},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "用户名已存在")

	resp, _ = env.PostForm(t, "/register", url.Values{
		"username": {"carol"}, "email": {"carol@example.com"},
		"password": {"pw"}, "confirm_password": {"pw"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body = env.Get(t, "/")
	assert.True(t, strings.Contains(body, "当前用户：carol"))
}

func TestE2E_AuthNotRequired(t *testing.T) {
	env := SetupTestEnvironment(t, false)

	resp, body := env.Get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "所有用户列表")
	assert.NotContains(t, body, "/logout")
}
