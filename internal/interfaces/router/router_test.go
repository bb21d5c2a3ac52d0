package router

import (
	"io"
	"net/http/httptest"
	"testing"

	"autolot-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApp_NoStoreConfigured(t *testing.T) {
	app, db, rdb, err := CreateApp(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.Nil(t, rdb)

	// landing page is always up
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "AutoLot")

	// inventory routes are only mounted with a store
	resp2, err := app.Test(httptest.NewRequest("GET", "/api/cars", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp2.StatusCode)
}

func TestCreateApp_BadRedisURL(t *testing.T) {
	_, _, _, err := CreateApp(&config.Config{RedisURL: "not-a-url"})
	assert.Error(t, err)
}
