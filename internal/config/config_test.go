package config

import (
	"blackjack-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BJ_MAX_SESSIONS", "8")
	defer clear2()

	a := assert.New(t)
	config = Config{}
	cfg := Instance()
	a.Equal(":3000", cfg.Addr)
	a.Equal(8, cfg.MaxSessions)
	a.Equal(30, cfg.ReadTimeout)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("sqlite", cfg.History.Driver)
	a.Equal(":memory:", cfg.History.DSN)

	// defaults survive a partial file
	a.Equal("Connection Successful", cfg.Handshake)
	a.Equal("./sql", cfg.History.MigrationsPath)

	// ensure that it's only loaded once
	unset := util.SetEnv("BJ_MAX_SESSIONS", "9")
	defer unset()
	// ensure we aren't using a pointer
	cfg.Addr = "bad"
	cfg = Instance()
	a.Equal(8, cfg.MaxSessions)
	a.Equal(":3000", cfg.Addr)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	a := assert.New(t)
	a.Error(Load())
	clear1()

	a.NoError(Load())
	cfg := Instance()
	a.Equal(":23716", cfg.Addr)
	a.Equal(1, cfg.MaxSessions)
	a.Equal(0, cfg.ReadTimeout)
	a.Equal("", cfg.HTTPAddr)
	a.Equal("Connection Successful", cfg.Handshake)
	a.False(cfg.TerminateOnWriteFailure)
}
