package functions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-platform/domain/content"
)

// Without MONGODB_URI the adapter must come up on the in-memory store
// and answer exactly like the long-lived server.
func TestHandlerBootstrapsOnce(t *testing.T) {
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		Handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "invocation %d", i+1)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, content.ModeMemory, body["store_mode"])
	}
}

func TestHandlerServesPublicListing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/content?section=hero", nil)
	rec := httptest.NewRecorder()

	Handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []content.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Empty(t, results)
}
