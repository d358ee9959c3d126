package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Alos-no/cfapi/internal/constants"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage accounts",
		Long:    "List accounts and manage their members and subscriptions",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsMembersCommand())
	cmd.AddCommand(newAccountsSubscriptionsCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts visible to the caller",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			accounts, err := client.Accounts().Iterate(context.Background(), nil,
				constants.LargePageSize).All()
			if err != nil {
				return fmt.Errorf("listing accounts: %w", err)
			}

			return renderOutput(accounts, func() error {
				if len(accounts) == 0 {
					_, _ = os.Stdout.WriteString("No accounts found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type")

				for _, account := range accounts {
					_ = table.Append(account.ID, account.Name, formatEnum(account.Type))
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newAccountsMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage account members",
	}

	cmd.PersistentFlags().StringP("account", "a", "", "account ID")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List account members",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := accountIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			members, err := client.AccountMembers().Iterate(context.Background(), accountID,
				constants.LargePageSize).All()
			if err != nil {
				return fmt.Errorf("listing account members: %w", err)
			}

			return renderOutput(members, func() error {
				if len(members) == 0 {
					_, _ = os.Stdout.WriteString("No members found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Email", "Status", "Roles")

				for _, member := range members {
					roles := make([]string, 0, len(member.Roles))
					for _, role := range member.Roles {
						roles = append(roles, role.Name)
					}

					_ = table.Append(member.ID, member.User.Email, formatEnum(member.Status),
						strings.Join(roles, ", "))
				}

				_ = table.Render()

				return nil
			})
		},
	})

	var roleIDs []string

	invite := &cobra.Command{
		Use:   "invite EMAIL",
		Short: "Invite a user into the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := accountIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			member, err := client.AccountMembers().Create(context.Background(), accountID,
				&cfapi.AccountMemberInvite{Email: args[0], Roles: roleIDs})
			if err != nil {
				return fmt.Errorf("inviting member: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Invited %s (%s)\n", member.User.Email, member.ID)

			return nil
		},
	}
	invite.Flags().StringSliceVar(&roleIDs, "role", nil, "role ID to grant (repeatable)")
	cmd.AddCommand(invite)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove MEMBER_ID",
		Short: "Remove a member from the account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := accountIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.AccountMembers().Delete(context.Background(), accountID, args[0])
			if err != nil {
				return fmt.Errorf("removing member: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Member %s removed\n", args[0])

			return nil
		},
	})

	return cmd
}

func newAccountsSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Manage account subscriptions",
	}

	cmd.PersistentFlags().StringP("account", "a", "", "account ID")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := accountIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			subscriptions, err := client.Subscriptions().List(context.Background(), accountID)
			if err != nil {
				return fmt.Errorf("listing subscriptions: %w", err)
			}

			return renderOutput(subscriptions, func() error {
				if len(subscriptions) == 0 {
					_, _ = os.Stdout.WriteString("No subscriptions found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "State", "Plan", "Frequency", "Price")

				for _, subscription := range subscriptions {
					plan := NotAvailable
					if subscription.RatePlan != nil {
						plan = subscription.RatePlan.PublicName
					}

					_ = table.Append(subscription.ID, formatEnum(subscription.State), plan,
						formatEnum(subscription.Frequency),
						fmt.Sprintf("%.2f %s", subscription.Price, subscription.Currency))
				}

				_ = table.Render()

				return nil
			})
		},
	})

	return cmd
}
