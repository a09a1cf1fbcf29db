package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := New(url, time.Second)
	require.NoError(t, err)
	c.Backoff = time.Millisecond
	return c
}

func TestGetJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		assert.Equal(t, "ana", r.Header.Get("X-Student-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.Headers = map[string]string{"X-Student-ID": "ana"}

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.GetJSON(context.Background(), "api/medications/m1", &out))
	assert.Equal(t, "m1", out.ID)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestGetJSON_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.GetJSON(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
	assert.EqualValues(t, DefaultAttempts, atomic.LoadInt32(&calls))
}

func TestGetJSON_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "Medication not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.GetJSON(context.Background(), "/api/medications/nope", nil)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, "Medication not found", he.Body)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("", time.Second)
	assert.Error(t, err)

	_, err = New("not a url", time.Second)
	assert.Error(t, err)
}
