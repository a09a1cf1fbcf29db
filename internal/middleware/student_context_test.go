package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentContext(t *testing.T) {
	var got string
	var found bool
	h := StudentContext("station")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = GetStudentID(r.Context())
	}))

	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"default", nil, "station"},
		{"student header", map[string]string{StudentHeader: " ana "}, "ana"},
		{"debug header", map[string]string{"X-Debug-User-ID": "dev"}, "dev"},
		{"student wins", map[string]string{StudentHeader: "ana", "X-Debug-User-ID": "dev"}, "ana"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.True(t, found)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStudentContext_NoDefault(t *testing.T) {
	found := true
	h := StudentContext("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = GetStudentID(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, found)
}
