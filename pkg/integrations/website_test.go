package integrations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsiteCheckReachableHTML(t *testing.T) {
	const page = `<html><head>
		<title> Acme Corp </title>
		<meta name="description" content="Industrial anvils since 1949">
	</head><body>hello</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	client := NewWebsiteClient(5*time.Second, "test-agent")
	result := client.Check(context.Background(), srv.URL)

	require.True(t, result.Succeeded())
	assert.True(t, result.Reachable)
	require.NotNil(t, result.StatusCode)
	assert.Equal(t, 200, *result.StatusCode)
	require.NotNil(t, result.Title)
	assert.Equal(t, "Acme Corp", *result.Title)
	require.NotNil(t, result.Description)
	assert.Equal(t, "Industrial anvils since 1949", *result.Description)
	assert.Equal(t, len(page), result.ContentLength)
}

func TestWebsiteCheckSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebsiteClient(5*time.Second, "Mozilla/5.0 (compatible; vetd/1.0; +https://github.com/trustlane/vetd)")
	result := client.Check(context.Background(), srv.URL)

	require.True(t, result.Succeeded())
	assert.Equal(t, "Mozilla/5.0 (compatible; vetd/1.0; +https://github.com/trustlane/vetd)", gotUA)
}

func TestWebsiteCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewWebsiteClient(5*time.Second, "test-agent")
	result := client.Check(context.Background(), srv.URL)

	// A response arrived, so the probe itself succeeded
	require.True(t, result.Succeeded())
	assert.False(t, result.Reachable)
	require.NotNil(t, result.StatusCode)
	assert.Equal(t, 503, *result.StatusCode)
	assert.Nil(t, result.Title)
}

func TestWebsiteCheckNonHTMLSkipsMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title": "not parsed"}`))
	}))
	defer srv.Close()

	client := NewWebsiteClient(5*time.Second, "test-agent")
	result := client.Check(context.Background(), srv.URL)

	require.True(t, result.Succeeded())
	assert.True(t, result.Reachable)
	assert.Nil(t, result.Title)
	assert.Nil(t, result.Description)
}

func TestWebsiteCheckNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewWebsiteClient(2*time.Second, "test-agent")
	result := client.Check(context.Background(), srv.URL)

	assert.False(t, result.Succeeded())
	assert.NotEmpty(t, result.Error)
}

func TestWebsiteCheckFollowsRedirects(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, srv.URL+"/landing", http.StatusMovedPermanently)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head><title>Landing</title></head></html>"))
	}))
	defer srv.Close()

	client := NewWebsiteClient(5*time.Second, "test-agent")
	result := client.Check(context.Background(), srv.URL)

	require.True(t, result.Succeeded())
	assert.True(t, result.Reachable)
	require.NotNil(t, result.Title)
	assert.Equal(t, "Landing", *result.Title)
}
