package wallet

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kashguard/go-btc-identity/internal/api"
	"github.com/kashguard/go-btc-identity/internal/config"
	"github.com/kashguard/go-btc-identity/internal/util/command"
)

func newGenerate(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generates a new secp256k1 keypair and prints its public key and address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}

			return command.WithServer(cmd.Context(), cfg, func(_ context.Context, s *api.Server) error {
				w, err := s.CreateWallet()
				if err != nil {
					return err
				}

				addr, err := s.WalletAddress(w)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "network:    %s\n", s.Deriver.Network())
				fmt.Fprintf(out, "public key: %s\n", hex.EncodeToString(w.PublicKeyBytes()))
				fmt.Fprintf(out, "address:    %s\n", addr)
				return nil
			})
		},
	}
}
