package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// NewR2Command creates the r2 command group.
func NewR2Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "r2",
		Short: "Administer R2 buckets",
		Long:  "Create, list, and delete R2 buckets and edit their configuration",
	}

	cmd.PersistentFlags().StringP("account", "a", "", "account ID")
	cmd.PersistentFlags().StringP("jurisdiction", "j", "", "bucket jurisdiction (eu, fedramp)")

	cmd.AddCommand(newR2ListCommand())
	cmd.AddCommand(newR2CreateCommand())
	cmd.AddCommand(newR2GetCommand())
	cmd.AddCommand(newR2DeleteCommand())
	cmd.AddCommand(newR2CORSCommand())

	return cmd
}

func accountIDFromFlag(cmd *cobra.Command) (string, error) {
	accountID, _ := cmd.Flags().GetString("account")
	if accountID == "" {
		return "", ErrAccountRequired
	}

	return accountID, nil
}

func jurisdictionFromFlag(cmd *cobra.Command) cfapi.Enum {
	jurisdiction, _ := cmd.Flags().GetString("jurisdiction")

	return cfapi.EnumOf(jurisdiction)
}

func newR2ListCommand() *cobra.Command {
	var nameContains string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := accountIDFromFlag(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			filter := &cfapi.R2BucketListFilter{Jurisdiction: jurisdictionFromFlag(cmd)}
			if nameContains != "" {
				filter.NameContains = &nameContains
			}

			buckets, err := client.R2().IterateBuckets(context.Background(), accountID, filter).All()
			if err != nil {
				return fmt.Errorf("listing buckets: %w", err)
			}

			return renderOutput(buckets, func() error {
				return outputBucketsTable(buckets)
			})
		},
	}

	cmd.Flags().StringVar(&nameContains, "name-contains", "", "filter by name substring")

	return cmd
}

func outputBucketsTable(buckets []cfapi.R2Bucket) error {
	if len(buckets) == 0 {
		_, _ = os.Stdout.WriteString("No buckets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Location", "Storage Class", "Created")

	for _, bucket := range buckets {
		_ = table.Append(bucket.Name, formatEnum(bucket.Location), formatEnum(bucket.StorageClass),
			formatTime(bucket.CreationDate))
	}

	_ = table.Render()

	return nil
}

func newR2CreateCommand() *cobra.Command {
	var (
		locationHint string
		storageClass string
	)

	cmd := &cobra.Command{
		Use:   "create BUCKET",
		Short: "Create a bucket",
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

			bucket, err := client.R2().CreateBucket(context.Background(), accountID,
				&cfapi.R2BucketCreateRequest{
					Name:         args[0],
					LocationHint: cfapi.EnumOf(locationHint),
					StorageClass: cfapi.EnumOf(storageClass),
				}, jurisdictionFromFlag(cmd))
			if err != nil {
				return fmt.Errorf("creating bucket: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Bucket %s created\n", bucket.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&locationHint, "location", "", "location hint")
	cmd.Flags().StringVar(&storageClass, "storage-class", "", "default storage class")

	return cmd
}

func newR2GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BUCKET",
		Short: "Get bucket details",
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

			bucket, err := client.R2().GetBucket(context.Background(), accountID, args[0],
				jurisdictionFromFlag(cmd))
			if err != nil {
				return fmt.Errorf("fetching bucket: %w", err)
			}

			return renderOutput(bucket, func() error {
				return outputBucketsTable([]cfapi.R2Bucket{*bucket})
			})
		},
	}
}

func newR2DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BUCKET",
		Short: "Delete an empty bucket",
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

			err = client.R2().DeleteBucket(context.Background(), accountID, args[0],
				jurisdictionFromFlag(cmd))
			if err != nil {
				return fmt.Errorf("deleting bucket: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Bucket %s deleted\n", args[0])

			return nil
		},
	}
}

func newR2CORSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cors",
		Short: "Manage bucket CORS rules",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get BUCKET",
		Short: "Show the bucket's CORS configuration",
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

			config, err := client.R2().GetCORS(context.Background(), accountID, args[0],
				jurisdictionFromFlag(cmd))
			if err != nil {
				return fmt.Errorf("fetching CORS configuration: %w", err)
			}

			return outputJSON(config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete BUCKET",
		Short: "Remove the bucket's CORS configuration",
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

			err = client.R2().DeleteCORS(context.Background(), accountID, args[0],
				jurisdictionFromFlag(cmd))
			if err != nil {
				return fmt.Errorf("deleting CORS configuration: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "CORS configuration removed from %s\n", args[0])

			return nil
		},
	})

	return cmd
}
