package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonmoystark/portfolio/internal/content"
	"github.com/tonmoystark/portfolio/internal/store"
)

type fakeMailer struct {
	mu   sync.Mutex
	err  error
	sent []ContactMessage
}

func (m *fakeMailer) Send(_ context.Context, msg ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func newTestServer(t *testing.T) (*server, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg, err := loadConfig(func(string) string { return "" })
	require.NoError(t, err)
	cfg.AdminUsername = "owner"
	cfg.AdminPassword = "secret"

	mailer := &fakeMailer{}
	return newServer(cfg, st, mailer), mailer
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexPage(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(s.router(), "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, content.OwnerName)
	assert.Contains(t, body, "Task Flow Management App")
	assert.Contains(t, body, `data-stream="/hero/stream"`)
	assert.Contains(t, body, `hx-post="/contact"`)

	assert.Contains(t, body, `<header class="site-header">`)
	for _, anchor := range []string{"#home", "#about", "#projects", "#contact"} {
		assert.Contains(t, body, `href="`+anchor+`"`)
	}
	assert.Contains(t, body, `href="/static/resume.pdf"`)
	assert.Contains(t, body, "Download Resume")
}

func TestStaticAssets(t *testing.T) {
	s, _ := newTestServer(t)
	r := s.router()

	w := get(r, "/static/hero.js")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EventSource")

	w = get(r, "/static/resume.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	r := s.router()

	get(r, "/")
	w := get(r, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portfolio_page_views_total{path="/"} 1`)
}
