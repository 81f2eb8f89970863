package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPrivate = `
jwt_key: 'secret'
pg:
  host: localhost
  port: 5432
  user: forum
  password: forum
  dbname: forum
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfig(t, "http_port: 5000\njwt_ttl: 3\nlog_level: debug\nallowed_origins: ['http://localhost:3000']\n", validPrivate)

	cfg := MustLoad(dir)

	assert.Equal(t, 5000, cfg.Public.HttpPort)
	assert.Equal(t, 3*time.Hour, cfg.JwtTTL())
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.AllowedOrigins)
	assert.Equal(t, "secret", cfg.JwtKey())
	assert.Equal(t, Pg{Host: "localhost", Port: 5432, User: "forum", Password: "forum", Dbname: "forum"}, cfg.Private.Pg)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout())
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// jwt_ttl is intentionally missing
	dir := writeConfig(t, "http_port: 5000\n", validPrivate)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_MissingPgField(t *testing.T) {
	dir := writeConfig(t, "http_port: 5000\njwt_ttl: 1\n", "jwt_key: 'k'\npg:\n  host: localhost\n")

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_BadLogLevel(t *testing.T) {
	dir := writeConfig(t, "http_port: 5000\njwt_ttl: 1\nlog_level: loud\n", validPrivate)

	assert.Panics(t, func() { MustLoad(dir) })
}

func TestMustLoad_NoFiles(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
