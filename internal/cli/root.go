// Package cli holds the money_counter command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "money_counter",
		Short:        "Spell ruble amounts and counts in Russian words",
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd(), spellCmd(), calcCmd(), tuiCmd(), hashSecretCmd())
	return cmd
}
