package probe_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"bankocr/pkg/probe"
)

func TestHealthz(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		appName    string
		appVersion string
		body       string
	}{
		{
			name:       "Named application",
			appName:    "bankocr",
			appVersion: "v0.0.1",
			body:       `{"name":"bankocr","version":"v0.0.1"}`,
		},
		{
			name: "Empty options",
			body: `{"name":"","version":""}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			p := probe.New(probe.Options{Name: tc.appName, Version: tc.appVersion})

			rec := httptest.NewRecorder()
			p.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

			body, err := io.ReadAll(rec.Result().Body)
			rq.NoError(err)
			rq.Equal(http.StatusOK, rec.Code)
			rq.Equal(tc.body, string(body))
		})
	}
}
