package app

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"projectlink/internal/config"
	"projectlink/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) config.Config {
	return config.Config{
		App:      config.AppConfig{AppName: "projectlink", Environment: "test", HTTPPort: "8080", WSPort: "8081"},
		Store:    config.StoreConfig{Driver: driver},
		Features: config.FeatureConfig{RecommendLimit: 3, SeedDemoData: true},
	}
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("  ")
	assert.Error(t, err)
}

func TestNewContainer_MemorySeeds(t *testing.T) {
	c, err := NewContainer(testConfig(config.DriverMemory), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.DB)
	assert.Equal(t, "memory", c.Store.Backend().Name())

	items, err := repository.NewKVProjectRepository(c.Store).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestNewContainer_RedisFallsBackToMemory(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(config.DriverRedis)
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: "1"}

	c, err := NewContainer(cfg, log.New(&buf, "", 0))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "memory", c.Store.Backend().Name())
	assert.Contains(t, buf.String(), "falling back to memory")
}

func TestNewContainer_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(config.DriverRedis)
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: mr.Port()}

	c, err := NewContainer(cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "redis", c.Store.Backend().Name())
	assert.True(t, mr.Exists(repository.KeyProjects))
}

func TestNewContainer_SQLite(t *testing.T) {
	cfg := testConfig(config.DriverSQLite)
	cfg.Store.SQLitePath = filepath.Join(t.TempDir(), "data", "projectlink.db")

	c, err := NewContainer(cfg, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.DB)
	assert.Equal(t, "sqlite", c.Store.Backend().Name())
}

func TestNew_ServesHealthAndRoutes(t *testing.T) {
	c, err := NewContainer(testConfig(config.DriverMemory), log.New(io.Discard, "", 0))
	require.NoError(t, err)
	defer c.Close()

	a := New(c)
	require.NotNil(t, a.WS)

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
