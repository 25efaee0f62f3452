package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

func calcCmd() *cobra.Command {
	var budget, price, count string
	var words bool

	c := &cobra.Command{
		Use:     "calc",
		Short:   "Check whether a budget covers count items at a price",
		Example: "  money_counter calc --budget 1000 --price 99.90 --count 3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := parseCalculation(budget, price, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, calc.Summary())
			if words {
				spelled, err := calc.SpelledSummary()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, spelled)
			}
			if affordable, err := calc.Affordable(); err == nil {
				fmt.Fprintf(out, "Бюджета хватит на: %s\n", affordable)
			} else if !errors.Is(err, domain.ErrDivisionByZero) {
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&budget, "budget", "b", "0", "Budget in rubles")
	c.Flags().StringVarP(&price, "price", "p", "0", "Price of one item in rubles")
	c.Flags().StringVarP(&count, "count", "n", "1", "Number of items")
	c.Flags().BoolVarP(&words, "words", "w", false, "Also print the summary in words")
	_ = c.MarkFlagRequired("price")
	return c
}

func parseCalculation(budget, price, count string) (domain.Calculation, error) {
	b, err := domain.ParseMoney(budget)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("budget: %w", err)
	}
	p, err := domain.ParseMoney(price)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("price: %w", err)
	}
	n, err := domain.ParseCount(count)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("count: %w", err)
	}
	return domain.NewCalculation(b, p, n)
}
