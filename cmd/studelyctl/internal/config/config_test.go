package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arden28/studely-client/pkg/sdk"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envServer, "")
	t.Setenv(envDevice, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.NotEmpty(t, cfg.Device)
	assert.Equal(t, sdk.DefaultConfirmTimeout, cfg.ConfirmTimeout)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(envServer, "")
	t.Setenv(envDevice, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url: https://api.studely.test\ndevice: workstation\nconfirm_timeout: 2s\n",
	), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.studely.test", cfg.ServerURL)
	assert.Equal(t, "workstation", cfg.Device)
	assert.Equal(t, 2*time.Second, cfg.ConfirmTimeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: https://file.studely.test\n"), 0600))

	t.Setenv(envServer, "https://env.studely.test")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.studely.test", cfg.ServerURL)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [unclosed"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := &GlobalConfig{ServerURL: "https://api.studely.test"}
	ctx := InjectConfig(context.Background(), cfg)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, MustFromContext(ctx))

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { MustFromContext(context.Background()) })
}
