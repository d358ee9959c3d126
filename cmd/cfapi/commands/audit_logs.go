package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// AuditLogsOptions holds the options for listing audit logs.
type AuditLogsOptions struct {
	ActorEmail string
	ActionType string
	Since      string
	Before     string
	UseV2      bool
	Limit      int
}

// NewAuditLogsCommand creates the audit-logs command.
func NewAuditLogsCommand() *cobra.Command {
	var opts AuditLogsOptions

	cmd := &cobra.Command{
		Use:     "audit-logs",
		Aliases: []string{"audit"},
		Short:   "Read account audit logs",
		Long:    "List audit-log entries for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := accountIDFromFlag(cmd)
			if err != nil {
				return err
			}

			return runAuditLogsCommand(accountID, opts)
		},
	}

	cmd.Flags().StringP("account", "a", "", "account ID")
	cmd.Flags().StringVar(&opts.ActorEmail, "actor-email", "", "filter by actor email")
	cmd.Flags().StringVar(&opts.ActionType, "action-type", "", "filter by action type")
	cmd.Flags().StringVar(&opts.Since, "since", "", "only entries after this RFC 3339 instant")
	cmd.Flags().StringVar(&opts.Before, "before", "", "only entries before this RFC 3339 instant")
	cmd.Flags().BoolVar(&opts.UseV2, "v2", false, "use the cursor-paginated v2 endpoint")
	cmd.Flags().IntVar(&opts.Limit, "limit", 100, "maximum entries to fetch")

	return cmd
}

func parseInstant(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}

	return &instant, nil
}

func runAuditLogsCommand(accountID string, opts AuditLogsOptions) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	since, err := parseInstant(opts.Since)
	if err != nil {
		return err
	}

	before, err := parseInstant(opts.Before)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var iterator *cfapi.Iterator[cfapi.AuditLog]

	if opts.UseV2 {
		filter := &cfapi.AuditLogV2Filter{Since: since, Before: before}
		if opts.ActorEmail != "" {
			filter.ActorEmail = &opts.ActorEmail
		}

		if opts.ActionType != "" {
			filter.ActionTypes = []string{opts.ActionType}
		}

		iterator = client.AuditLogs().IterateV2(ctx, accountID, filter)
	} else {
		filter := &cfapi.AuditLogFilter{Since: since, Before: before}
		if opts.ActorEmail != "" {
			filter.ActorEmail = &opts.ActorEmail
		}

		if opts.ActionType != "" {
			filter.ActionType = &opts.ActionType
		}

		iterator = client.AuditLogs().Iterate(ctx, accountID, filter, 0)
	}

	logs := make([]cfapi.AuditLog, 0, opts.Limit)

	err = iterator.ForEach(func(entry cfapi.AuditLog) error {
		logs = append(logs, entry)
		if len(logs) >= opts.Limit {
			return errLimitReached
		}

		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return fmt.Errorf("listing audit logs: %w", err)
	}

	return renderOutput(logs, func() error {
		return outputAuditLogsTable(logs)
	})
}

var errLimitReached = errors.New("limit reached")

func outputAuditLogsTable(logs []cfapi.AuditLog) error {
	if len(logs) == 0 {
		_, _ = os.Stdout.WriteString("No audit-log entries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("When", "Actor", "Action", "Resource", "Result")

	for _, entry := range logs {
		result := "failure"
		if entry.Action.Result {
			result = "success"
		}

		actor := entry.Actor.Email
		if actor == "" {
			actor = entry.Actor.ID
		}

		_ = table.Append(formatTime(entry.When), actor, entry.Action.Type,
			entry.Resource.Type, result)
	}

	_ = table.Render()

	return nil
}
