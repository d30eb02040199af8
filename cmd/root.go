package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kashguard/go-btc-identity/cmd/wallet"
	"github.com/kashguard/go-btc-identity/internal/config"
)

const (
	networkFlag  = "network"
	logLevelFlag = "log-level"
	prettyFlag   = "pretty"
)

// NewRoot builds the root command with all subcommands bound to v.
func NewRoot(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "identity",
		Short:         "secp256k1 identities with Bitcoin style addresses",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String(networkFlag, config.DefaultNetwork, "Network whose address version byte is used (mainnet, testnet3, regtest, simnet, signet)")
	flags.String(logLevelFlag, config.DefaultLoggerLevel, "Log level (trace, debug, info, warn, error)")
	flags.Bool(prettyFlag, config.DefaultLoggerPretty, "Pretty print logs to the console")

	_ = v.BindPFlag(config.NetworkKey, flags.Lookup(networkFlag))
	_ = v.BindPFlag(config.LoggerLevelKey, flags.Lookup(logLevelFlag))
	_ = v.BindPFlag(config.LoggerPrettyPrintKey, flags.Lookup(prettyFlag))

	root.AddCommand(wallet.New(v))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRoot(config.NewViper()).ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
