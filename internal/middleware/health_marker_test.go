package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthMarker_CountsRequestsAndErrors(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	app := fiber.New()
	app.Use(HealthMarker(rdb))
	app.Get("/api/cars", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{}) })
	app.Get("/api/boom", func(c *fiber.Ctx) error { return c.SendStatus(500) })
	app.Get("/health/json", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{}) })

	_, err = app.Test(httptest.NewRequest("GET", "/api/cars", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/api/boom", nil))
	require.NoError(t, err)
	// health paths are skipped
	_, err = app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)

	ctx := context.Background()
	total, err := rdb.Get(ctx, KeyReqTotal).Result()
	require.NoError(t, err)
	assert.Equal(t, "2", total)
	errCount, err := rdb.Get(ctx, KeyReqErrors).Result()
	require.NoError(t, err)
	assert.Equal(t, "1", errCount)
	logged, err := rdb.LRange(ctx, KeyErrorLog, 0, -1).Result()
	require.NoError(t, err)
	assert.Len(t, logged, 1)
}

func TestHealthMarker_NilClientPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(HealthMarker(nil))
	app.Get("/api/cars", func(c *fiber.Ctx) error { return c.SendStatus(200) })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/cars", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
