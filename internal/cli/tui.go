package cli

import (
	"github.com/spf13/cobra"

	"github.com/SscSPs/money_counter/internal/ui/tui"
)

func tuiCmd() *cobra.Command {
	var budget, price, count string

	c := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive budget window",
		RunE: func(_ *cobra.Command, _ []string) error {
			calc, err := parseCalculation(budget, price, count)
			if err != nil {
				return err
			}
			return tui.Run(tui.Deps{Budget: calc.Budget, Price: calc.Price, Count: calc.Count})
		},
	}

	c.Flags().StringVarP(&budget, "budget", "b", "0", "Initial budget")
	c.Flags().StringVarP(&price, "price", "p", "0", "Initial price")
	c.Flags().StringVarP(&count, "count", "n", "0", "Initial count")
	return c
}
