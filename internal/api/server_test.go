package api_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gamemodules/internal/api"
	"github.com/mcoot/gamemodules/internal/testutil"
)

func TestServerConfigEnvDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := env.ParseAs[api.ServerConfig]()
	require.NoError(t, err)
	assert.Equal(t, api.DefaultServerConfig(), cfg)
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv("GMOD_HOST", "127.0.0.1")
	t.Setenv("GMOD_PORT", "9090")
	t.Setenv("GMOD_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := env.ParseAs[api.ServerConfig]()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)

	server := api.NewServer(nil, cfg, testutil.NopLogger())
	assert.Equal(t, "127.0.0.1:9090", server.Addr())
}
