package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashguard/go-btc-identity/internal/api"
	"github.com/kashguard/go-btc-identity/internal/crypto"
	"github.com/kashguard/go-btc-identity/internal/test"
	"github.com/kashguard/go-btc-identity/internal/util/command"
)

func TestWithServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var testError = errors.New("test error")

	cfg := test.DefaultTestConfig()
	cfg.Logger.PrettyPrintConsole = false
	resultErr := command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		w, err := s.CreateWallet()
		require.NoError(t, err)

		addr, err := w.Address()
		require.NoError(t, err)
		assert.NotEmpty(t, addr)

		return testError
	})

	assert.Equal(t, testError, resultErr)
}

func TestWithServerInitFailure(t *testing.T) {
	cfg := test.DefaultTestConfig()
	cfg.Wallet.Curve = "ed25519"

	called := false
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	err := command.WithServer(ctx, cfg, func(context.Context, *api.Server) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, crypto.ErrCryptoUnavailable)
	assert.False(t, called)
}

func TestNewSubcommandGroup(t *testing.T) {
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	group := command.NewSubcommandGroup("group", child)

	assert.Equal(t, "group", group.Name())
	require.Len(t, group.Commands(), 1)
	assert.Equal(t, "child", group.Commands()[0].Name())
}
