package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, ":8000", cfg.EndpointAddr)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	require.Equal(t, "static/uploads", cfg.UploadDir)
	require.Empty(t, cfg.S3Bucket)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("S3_BUCKET", "avatars")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, ":9999", cfg.EndpointAddr)
	require.Equal(t, "env-secret", cfg.SecretKey)
	require.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
	require.Equal(t, "avatars", cfg.S3Bucket)
}

func TestParseEnv_IgnoresInvalidMinutes(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
}

func TestParseJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "conf*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{"address": ":7070", "access_token_expire_minutes": 15}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	oldArgs := os.Args
	os.Args = []string{"server", "-c", f.Name()}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	require.Equal(t, ":7070", cfg.EndpointAddr)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	// untouched fields keep their defaults
	require.Equal(t, "secretKey", cfg.SecretKey)
}
