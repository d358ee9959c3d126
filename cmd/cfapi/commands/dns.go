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

// NewDNSCommand creates the dns command group.
func NewDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
		Long:  "List, create, update, and delete DNS records in a zone",
	}

	cmd.PersistentFlags().StringP("zone", "z", "", "zone ID")

	cmd.AddCommand(newDNSListCommand())
	cmd.AddCommand(newDNSCreateCommand())
	cmd.AddCommand(newDNSUpdateCommand())
	cmd.AddCommand(newDNSDeleteCommand())
	cmd.AddCommand(newDNSScanCommand())

	return cmd
}

func zoneIDFromFlag(cmd *cobra.Command) (string, error) {
	zoneID, _ := cmd.Flags().GetString("zone")
	if zoneID == "" {
		return "", ErrZoneRequired
	}

	return zoneID, nil
}

// DNSListOptions holds the options for listing DNS records.
type DNSListOptions struct {
	Type    string
	Name    string
	Content string
	All     bool
	PerPage int
}

func newDNSListCommand() *cobra.Command {
	var opts DNSListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DNS records",
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := zoneIDFromFlag(cmd)
			if err != nil {
				return err
			}

			return runDNSListCommand(zoneID, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by record type")
	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by record name")
	cmd.Flags().StringVar(&opts.Content, "content", "", "filter by record content")
	cmd.Flags().BoolVar(&opts.All, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", constants.DefaultPageSize, "results per page")

	return cmd
}

func runDNSListCommand(zoneID string, opts DNSListOptions) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	filter := &cfapi.DNSRecordListFilter{}
	if opts.Type != "" {
		filter.Type = cfapi.EnumOf(opts.Type)
	}

	if opts.Name != "" {
		filter.Name = &opts.Name
	}

	if opts.Content != "" {
		filter.Content = &opts.Content
	}

	var (
		records []cfapi.DNSRecord
		info    *cfapi.PageInfo
	)

	if opts.All {
		records, err = client.DNS().Iterate(ctx, zoneID, filter, constants.LargePageSize).All()
	} else {
		records, info, err = client.DNS().List(ctx, zoneID, filter, &cfapi.PageOptions{PerPage: opts.PerPage})
	}

	if err != nil {
		return fmt.Errorf("listing DNS records: %w", err)
	}

	return renderOutput(records, func() error {
		return outputDNSRecordsTable(records, info, opts.All)
	})
}

func outputDNSRecordsTable(records []cfapi.DNSRecord, info *cfapi.PageInfo, allPages bool) error {
	if len(records) == 0 {
		_, _ = os.Stdout.WriteString("No DNS records found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Name", "Content", "TTL", "Proxied")

	for _, record := range records {
		proxied := NotAvailable
		if record.Proxied != nil {
			proxied = strconv.FormatBool(*record.Proxied)
		}

		_ = table.Append(record.ID, formatEnum(record.Type), record.Name, record.Content,
			strconv.Itoa(record.TTL), proxied)
	}

	_ = table.Render()

	if !allPages && info != nil && info.TotalPages > 1 {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing page %d of %d. Use --all to fetch all pages.\n",
			info.Page, info.TotalPages)
	}

	return nil
}

// DNSRecordOptions holds the mutable fields for create and update.
type DNSRecordOptions struct {
	TTL     int
	Proxied bool
	Comment string
	Tags    []string
}

func dnsRequestFromOptions(cmd *cobra.Command, recordType, name, content string, opts DNSRecordOptions) *cfapi.DNSRecordRequest {
	request := &cfapi.DNSRecordRequest{
		Type:    cfapi.EnumOf(recordType),
		Name:    name,
		Content: content,
		TTL:     opts.TTL,
		Tags:    opts.Tags,
	}

	if cmd.Flags().Changed("proxied") {
		request.Proxied = &opts.Proxied
	}

	if opts.Comment != "" {
		request.Comment = &opts.Comment
	}

	return request
}

func newDNSCreateCommand() *cobra.Command {
	var opts DNSRecordOptions

	cmd := &cobra.Command{
		Use:   "create TYPE NAME CONTENT",
		Short: "Create a DNS record",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := zoneIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.DNS().Create(context.Background(), zoneID,
				dnsRequestFromOptions(cmd, args[0], args[1], args[2], opts))
			if err != nil {
				return fmt.Errorf("creating DNS record: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created %s record %s (%s)\n",
				record.Type.Value(), record.Name, record.ID)

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.TTL, "ttl", 1, "record TTL in seconds (1 = automatic)")
	cmd.Flags().BoolVar(&opts.Proxied, "proxied", false, "proxy through the edge")
	cmd.Flags().StringVar(&opts.Comment, "comment", "", "record comment")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "record tag (repeatable)")

	return cmd
}

func newDNSUpdateCommand() *cobra.Command {
	var opts DNSRecordOptions

	cmd := &cobra.Command{
		Use:   "update RECORD_ID TYPE NAME CONTENT",
		Short: "Replace a DNS record",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := zoneIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.DNS().Update(context.Background(), zoneID, args[0],
				dnsRequestFromOptions(cmd, args[1], args[2], args[3], opts))
			if err != nil {
				return fmt.Errorf("updating DNS record: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated %s record %s\n", record.Type.Value(), record.Name)

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.TTL, "ttl", 1, "record TTL in seconds (1 = automatic)")
	cmd.Flags().BoolVar(&opts.Proxied, "proxied", false, "proxy through the edge")
	cmd.Flags().StringVar(&opts.Comment, "comment", "", "record comment")
	cmd.Flags().StringSliceVar(&opts.Tags, "tag", nil, "record tag (repeatable)")

	return cmd
}

func newDNSDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete RECORD_ID",
		Short: "Delete a DNS record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := zoneIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.DNS().Delete(context.Background(), zoneID, args[0])
			if err != nil {
				return fmt.Errorf("deleting DNS record: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "DNS record %s deleted\n", args[0])

			return nil
		},
	}
}

func newDNSScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan the origin for common DNS records",
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneID, err := zoneIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.DNS().Scan(context.Background(), zoneID)
			if err != nil {
				return fmt.Errorf("scanning DNS records: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Scan complete: %d records added (%d parsed)\n",
				result.RecsAdded, result.TotalRecordsParsed)

			return nil
		},
	}
}
