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

func newDecode(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <address>",
		Short: "Verifies an address checksum and prints its version byte and hash160",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}

			return command.WithServer(cmd.Context(), cfg, func(_ context.Context, s *api.Server) error {
				decoded, err := s.Deriver.Decode(args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "version: 0x%02x\n", decoded.Version)
				fmt.Fprintf(out, "hash160: %s\n", hex.EncodeToString(decoded.Hash160))
				if decoded.Version != s.Deriver.Version() {
					fmt.Fprintf(out, "warning: version does not match network %s\n", s.Deriver.Network())
				}
				return nil
			})
		},
	}
}
