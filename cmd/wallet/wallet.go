package wallet

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kashguard/go-btc-identity/internal/util/command"
)

func New(v *viper.Viper) *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newGenerate(v),
		newAddress(v),
		newDecode(v),
	)
}
