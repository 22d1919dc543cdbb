package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/SscSPs/change_maker/internal/core/domain"
	"github.com/SscSPs/change_maker/internal/utils"
	"github.com/spf13/cobra"
)

// NewCurrencies creates the command that prints the currency catalog.
func NewCurrencies(params *CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the known currencies and their denominations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := bootstrap(cmd.Context(), params.Viper, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var currencies []*domain.Currency
			if cmd.Flags().Changed("currency") {
				c, err := a.services.Currency.GetCurrencyByCode(ctx, a.cfg.CurrencyCode)
				if err != nil {
					return err
				}
				currencies = []*domain.Currency{c}
			} else if currencies, err = a.services.Currency.ListCurrencies(ctx); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range currencies {
				fmt.Fprintf(w, "%s\tminor unit %s\t%s\n", c.CurrencyCode, utils.FormatWithCurrencyPrecision(c.MinorUnit, c), c.CreatedBy)
				for _, d := range c.Denominations {
					fmt.Fprintf(w, "\t%s\t%s / %s\n", utils.FormatWithCurrencyPrecision(d.Value, c), d.Singular, d.Plural)
				}
			}
			return w.Flush()
		},
	}
}
