package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
app:
  name: portal
  env: test
  http:
    host: 127.0.0.1
    port: 8080
    readtimeoutsec: 5
    writetimeoutsec: 10
    idletimeoutsec: 60
log:
  level: debug
  json: false
db:
  driver: postgres
  dsn: postgres://u:p@localhost:5432/portal?sslmode=disable
  automigrate: true
session:
  store: redis
  ttl_hours: 24
redis:
  addr: localhost:6379
upload:
  max_size_mb: 5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c := Load(path)
	assert.Equal(t, "portal", c.App.Name)
	assert.Equal(t, 8080, c.App.HTTP.Port)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, "redis", c.Session.Store)
	assert.Equal(t, 24, c.Session.TTLHours)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: portal\n"), 0o600))

	c := Load(path)
	assert.Equal(t, "memory", c.Session.Store)
	assert.Equal(t, "portal_sid", c.Session.CookieName)
	assert.Equal(t, 24, c.Session.TTLHours)
	assert.Equal(t, 10, c.Session.SweepMinutes)
	assert.Equal(t, "public/uploads", c.Upload.Dir)
	assert.Equal(t, "/uploads", c.Upload.PublicPath)
	assert.Equal(t, 5, c.Upload.MaxSizeMB)
}
