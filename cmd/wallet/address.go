package wallet

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kashguard/go-btc-identity/internal/api"
	"github.com/kashguard/go-btc-identity/internal/config"
	"github.com/kashguard/go-btc-identity/internal/util/command"
)

func newAddress(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "address <pubkey-hex>",
		Short: "Derives the address of a SEC1 encoded secp256k1 public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pubKey, err := hex.DecodeString(args[0])
			if err != nil {
				return errors.Wrap(err, "public key must be hex encoded")
			}

			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}

			return command.WithServer(cmd.Context(), cfg, func(_ context.Context, s *api.Server) error {
				addr, err := s.DeriveAddress(pubKey)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), addr)
				return nil
			})
		},
	}
}
