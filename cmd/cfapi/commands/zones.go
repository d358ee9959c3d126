package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Alos-no/cfapi/internal/constants"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// NewZonesCommand creates the zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zones",
		Aliases: []string{"zone"},
		Short:   "Manage zones",
		Long:    "List, inspect, and delete zones, and edit their settings",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())
	cmd.AddCommand(newZonesDeleteCommand())
	cmd.AddCommand(newZonesSettingsCommand())

	return cmd
}

// ZonesListOptions holds the options for listing zones.
type ZonesListOptions struct {
	Name    string
	Status  string
	All     bool
	PerPage int
}

func newZonesListCommand() *cobra.Command {
	var opts ZonesListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZonesListCommand(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by zone name")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status")
	cmd.Flags().BoolVar(&opts.All, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", constants.DefaultPageSize, "results per page")

	return cmd
}

func runZonesListCommand(opts ZonesListOptions) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	filter := &cfapi.ZoneListFilter{}
	if opts.Name != "" {
		filter.Name = &opts.Name
	}

	if opts.Status != "" {
		filter.Status = cfapi.EnumOf(opts.Status)
	}

	var (
		zones []cfapi.Zone
		info  *cfapi.PageInfo
	)

	if opts.All {
		zones, err = client.Zones().Iterate(ctx, filter, constants.LargePageSize).All()
	} else {
		zones, info, err = client.Zones().List(ctx, filter, &cfapi.PageOptions{PerPage: opts.PerPage})
	}

	if err != nil {
		return fmt.Errorf("listing zones: %w", err)
	}

	return renderOutput(zones, func() error {
		return outputZonesTable(zones, info, opts.All)
	})
}

func outputZonesTable(zones []cfapi.Zone, info *cfapi.PageInfo, allPages bool) error {
	if len(zones) == 0 {
		_, _ = os.Stdout.WriteString("No zones found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Status", "Type", "Paused")

	for _, zone := range zones {
		_ = table.Append(zone.ID, zone.Name, formatEnum(zone.Status), formatEnum(zone.Type),
			strconv.FormatBool(zone.Paused))
	}

	_ = table.Render()

	if !allPages && info != nil && info.TotalPages > 1 {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing page %d of %d. Use --all to fetch all pages.\n",
			info.Page, info.TotalPages)
	}

	return nil
}

func newZonesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ZONE_ID",
		Short: "Get zone details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			zone, err := client.Zones().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching zone: %w", err)
			}

			return renderOutput(zone, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Field", "Value")
				_ = table.Append("ID", zone.ID)
				_ = table.Append("Name", zone.Name)
				_ = table.Append("Status", formatEnum(zone.Status))
				_ = table.Append("Type", formatEnum(zone.Type))
				_ = table.Append("Paused", strconv.FormatBool(zone.Paused))
				_ = table.Append("Account", zone.Account.Name)
				_ = table.Append("Created", formatTime(zone.CreatedOn))
				_ = table.Render()

				return nil
			})
		},
	}
}

func newZonesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ZONE_ID",
		Short: "Delete a zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete zone %s? Re-run with --force to confirm.\n", args[0])

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Zones().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting zone: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Zone %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation")

	return cmd
}

func newZonesSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage zone settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list ZONE_ID",
		Short: "List zone settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			settings, err := client.ZoneSettings().List(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("listing zone settings: %w", err)
			}

			return renderOutput(settings, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value", "Editable")

				for _, setting := range settings {
					_ = table.Append(setting.ID, formatEnum(setting.Value), strconv.FormatBool(setting.Editable))
				}

				_ = table.Render()

				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set ZONE_ID SETTING VALUE",
		Short: "Change a zone setting",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			setting, err := client.ZoneSettings().Update(context.Background(), args[0], args[1],
				&cfapi.ZoneSettingUpdateRequest{Value: cfapi.EnumOf(args[2])})
			if err != nil {
				return fmt.Errorf("updating zone setting: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s = %s\n", setting.ID, setting.Value.Value())

			return nil
		},
	})

	return cmd
}
