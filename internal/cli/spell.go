package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

func spellCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "spell",
		Short: "Print an amount or a count in digits and in words",
	}

	c.AddCommand(&cobra.Command{
		Use:     "money <amount>",
		Short:   "Spell an amount of rubles, e.g. 1234.56",
		Args:    cobra.ExactArgs(1),
		Example: "  money_counter spell money 2.22",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := domain.ParseMoney(args[0])
			if err != nil {
				return err
			}
			reading, err := domain.ReadMoney(amount)
			if err != nil {
				return err
			}
			return printReading(cmd.OutOrStdout(), reading.Text, reading.Words)
		},
	})

	c.AddCommand(&cobra.Command{
		Use:     "count <n>",
		Short:   "Spell a non-negative integer with the noun \"единица\"",
		Args:    cobra.ExactArgs(1),
		Example: "  money_counter spell count 21",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := domain.ParseCount(args[0])
			if err != nil {
				return err
			}
			reading, err := domain.ReadCount(count)
			if err != nil {
				return err
			}
			return printReading(cmd.OutOrStdout(), reading.Text, reading.Words)
		},
	})

	return c
}

func printReading(w io.Writer, text, words string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", text, words)
	return err
}
