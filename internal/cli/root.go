package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRoot creates and configures the root command with every subcommand attached.
func NewRoot(params *CmdParams) *cobra.Command {
	if params.Viper == nil {
		params.Viper = viper.New()
	}

	rootCmd := &cobra.Command{
		Use:          params.Use,
		Short:        params.Short,
		Long:         params.Long,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("currency", "USD", "currency code to make change in")
	flags.String("currencies-file", "", "YAML file with extra currencies to register")
	flags.Bool("debug", false, "log every decomposition")
	bindFlag(params.Viper, "CURRENCY_CODE", flags.Lookup("currency"))
	bindFlag(params.Viper, "CURRENCIES_FILE", flags.Lookup("currencies-file"))
	bindFlag(params.Viper, "DEBUG", flags.Lookup("debug"))

	rootCmd.AddCommand(
		NewCompute(params),
		NewCurrencies(params),
		NewServe(params),
		NewVersion(params),
	)

	return rootCmd
}
