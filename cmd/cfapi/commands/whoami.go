package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		Long:  "Verify the configured credential and display the user it belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			user, err := client.User().Get(ctx)
			if err != nil {
				return fmt.Errorf("fetching user: %w", err)
			}

			// Token verification only applies to API-token credentials; a
			// global key run still resolves the user above.
			var verification *cfapi.TokenVerification
			if viper.GetString("token") != "" {
				verification, err = client.VerifyToken(ctx)
				if err != nil {
					return fmt.Errorf("verifying token: %w", err)
				}
			}

			type whoami struct {
				User  *cfapi.User              `json:"user"            yaml:"user"`
				Token *cfapi.TokenVerification `json:"token,omitempty" yaml:"token,omitempty"`
			}

			return renderOutput(whoami{User: user, Token: verification}, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", user.ID)
				_ = table.Append("Email", user.Email)

				if user.Username != "" {
					_ = table.Append("Username", user.Username)
				}

				_ = table.Append("Two-Factor", strconv.FormatBool(user.TwoFactorEnabled))

				if verification != nil {
					_ = table.Append("Token Status", formatEnum(verification.Status))
				}

				return table.Render()
			})
		},
	}
}
