//go:build unit

package wger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymgain/internal/infra/wger"
	"gymgain/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *wger.Client {
	return wger.NewClient(config.WgerConfig{
		BaseURL:  srv.URL,
		Language: 2,
		Timeout:  time.Second,
	})
}

func TestSearchParsesSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/exercise/search/", r.URL.Path)
		assert.Equal(t, "bench", r.URL.Query().Get("term"))
		assert.Equal(t, "2", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"suggestions": [
				{"value": "Bench Press", "data": {"id": 10, "base_id": 7, "name": "Bench Press", "category": "Chest"}},
				{"value": "Incline Bench", "data": {"id": 11, "base_id": 0, "name": "", "category": ""}}
			]
		}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).Search(context.Background(), "bench")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(7), got[0].ExerciseID)
	assert.Equal(t, "Bench Press", got[0].Name)
	assert.Equal(t, "Chest", got[0].Category)

	// Fallbacks when the catalog omits fields.
	assert.Equal(t, int64(11), got[1].ExerciseID)
	assert.Equal(t, "Incline Bench", got[1].Name)
}

func TestSearchRejectsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), "bench")
	assert.Error(t, err)
}
