package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show account plan and balance",
	RunE:  runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	account, err := client.Account.Get(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Email:   %s\n", account.Email)
	fmt.Printf("Plan:    %s\n", account.Plan)
	fmt.Printf("Balance: $%.2f\n", float64(account.BalanceCents)/100)
	return nil
}
