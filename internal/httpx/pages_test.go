package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/httpx"
)

func doGet(srv http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	srv := newTestServer()

	for _, path := range []string{"/", "/posts"} {
		w := doGet(srv, path)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "FastAPI is Awesome")
		assert.Contains(t, w.Body.String(), "Python is Great for Web Development")
	}
}

func TestPostPage(t *testing.T) {
	srv := newTestServer()

	w := doGet(srv, "/posts/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FastAPI is Awesome")
	assert.Contains(t, w.Body.String(), "Corey Schafer")
}

func TestPostPageNotFound(t *testing.T) {
	srv := newTestServer()

	w := doGet(srv, "/posts/99")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Post not found")
	assert.Contains(t, w.Body.String(), "404")
}

func TestPostPageNonIntegerID(t *testing.T) {
	srv := newTestServer()

	// fuera de /api el fallo de validación sale como página, también 422
	w := doGet(srv, "/posts/abc")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Invalid request. Please check your input and try again.")
}

func TestUnknownRouteIsNormalized(t *testing.T) {
	srv := newTestServer()

	w := doGet(srv, "/api/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"detail": "Not Found"}`, w.Body.String())

	w = doGet(srv, "/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Not Found")
	assert.Contains(t, w.Body.String(), "404")
}

func TestPostPageTitleTruncatesRunes(t *testing.T) {
	srv := newTestServer()

	long := strings.Repeat("é", 60)
	w := doJSON(t, srv, http.MethodPost, "/api/posts", map[string]string{
		"title": long, "content": "C", "author": "A",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w2 := doGet(srv, "/posts/3")
	require.Equal(t, http.StatusOK, w2.Code)
	body := w2.Body.String()
	assert.True(t, utf8.ValidString(body))
	assert.Contains(t, body, "<title>"+strings.Repeat("é", 50)+"</title>")
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer()

	w := doGet(srv, "/api/posts")
	assert.NotEmpty(t, w.Header().Get(httpx.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(httpx.RequestIDHeader, "abc-123")
	w2 := httptest.NewRecorder()
	srv.ServeHTTP(w2, req)
	assert.Equal(t, "abc-123", w2.Header().Get(httpx.RequestIDHeader))
}

func TestStatusErrorFallbackMessage(t *testing.T) {
	srv := newTestServer()
	srv.Engine.GET("/api/teapot", func(c *gin.Context) {
		c.Error(&httpx.StatusError{Code: http.StatusTeapot})
	})
	srv.Engine.GET("/teapot", func(c *gin.Context) {
		c.Error(&httpx.StatusError{Code: http.StatusTeapot})
	})

	w := doGet(srv, "/api/teapot")
	require.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"detail": "An error occurred. Please check your request and try again."}`, w.Body.String())

	w = doGet(srv, "/teapot")
	require.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "An error occurred. Please check your request and try again.")
}
