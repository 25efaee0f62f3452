package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_counter/internal/utils"
)

func hashSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-secret <secret>",
		Short: "Print the bcrypt hash to put in CLIENT_SECRET_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.HashSecret(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}
