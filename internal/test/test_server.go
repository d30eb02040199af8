package test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/kashguard/go-btc-identity/internal/api"
	"github.com/kashguard/go-btc-identity/internal/config"
)

// WithTestServer returns a fully configured server (mainnet, default curve, debug logging)
// and passes it to closure.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestConfig(), closure)
}

// WithTestServerConfigurable is WithTestServer with a caller supplied config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	s, err := api.InitNewServer(cfg)
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	closure(s)
}

func DefaultTestConfig() config.Server {
	return config.Server{
		Logger: config.Logger{
			Level:              zerolog.DebugLevel,
			PrettyPrintConsole: false,
		},
		Wallet: config.Wallet{
			Network: config.DefaultNetwork,
			Curve:   config.DefaultCurve,
		},
	}
}
