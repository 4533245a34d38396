package swagger_test

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/masnyjimmy/reqdoc/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandlerServesDocumentAndUI(t *testing.T) {
	s := swagger.New([]byte(`{"openapi":"3.1.0"}`), swagger.Options{BaseUrl: "/docs"})
	h := s.Handler(nil)

	w := get(t, h, "/docs/openapi.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"openapi":"3.1.0"}`, w.Body.String())

	w = get(t, h, "/docs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `url: "/docs/openapi.json"`)
	assert.Contains(t, w.Body.String(), `new EventSource("/docs/events")`)

	w = get(t, h, "/other", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerFallsThrough(t *testing.T) {
	s := swagger.New(nil, swagger.DefaultOptions())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := get(t, s.Handler(next), "/items", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestHandlerCORS(t *testing.T) {
	opt := swagger.DefaultOptions()
	opt.AllowedOrigins = []string{"https://editor.example.com"}
	h := swagger.New([]byte(`{}`), opt).Handler(nil)

	w := get(t, h, "/openapi.json", http.Header{"Origin": {"https://editor.example.com"}})
	assert.Equal(t, "https://editor.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = get(t, h, "/openapi.json", http.Header{"Origin": {"https://evil.example.com"}})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetDocumentNotifiesClients(t *testing.T) {
	s := swagger.New([]byte(`{"v":1}`), swagger.DefaultOptions())
	server := httptest.NewServer(s.Handler(nil))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ":ok\n", line)

	s.SetDocument([]byte(`{"v":2}`))

	var event strings.Builder
	for !strings.Contains(event.String(), "data: reload") {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		event.WriteString(line)
	}
	assert.Contains(t, event.String(), "event: update")

	docResp, err := http.Get(server.URL + "/openapi.json")
	require.NoError(t, err)
	defer docResp.Body.Close()
	body, err := io.ReadAll(docResp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(body))
}

func TestWatchFileDebouncesWrites(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("a"), 0644))

	watcher, err := swagger.WatchFile(filename, swagger.DEFAULT_DEBOUNCE_TIME)
	require.NoError(t, err)
	defer watcher.Close()

	for range 3 {
		require.NoError(t, os.WriteFile(filename, []byte("b"), 0644))
	}

	select {
	case err := <-watcher.Update:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no update received")
	}

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(filename), "other.yaml"), []byte("c"), 0644))

	select {
	case err := <-watcher.Update:
		t.Fatalf("unexpected update for unrelated file: %v", err)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseEndsUpdates(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("a"), 0644))

	watcher, err := swagger.WatchFile(filename, swagger.DEFAULT_DEBOUNCE_TIME)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filename, []byte("b"), 0644))
	require.NoError(t, watcher.Close())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range watcher.Update {
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Update was not closed")
	}
}
