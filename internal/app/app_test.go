package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/sketchspy/internal/config"
	"example.com/sketchspy/internal/httpapi"
	"example.com/sketchspy/internal/words"
)

func memoryConfig() config.Config {
	var c config.Config
	c.Env = "dev"
	c.Log.Format = "text"
	c.HTTP.Addr = ":0"
	c.Words.Backend = config.WordsMemory
	c.Session.Secret = "test"
	c.Session.TTL = time.Hour
	return c
}

func TestApp_MemoryRoutes(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(context.Background()) })

	ts := httptest.NewServer(a.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/api/categories")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cats httpapi.CategoriesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cats))
	assert.Equal(t, words.Categories(), cats.Categories)

	resp2, err := http.Get(ts.URL + "/api/rooms/ABCD")
	require.NoError(t, err)
	_ = resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}
