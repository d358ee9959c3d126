package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// DNSClient implements cfapi.DNSClient.
type DNSClient struct {
	httpClient *internalhttp.Client
}

// List returns one page of DNS records in a zone.
func (c *DNSClient) List(ctx context.Context, zoneID string, filter *cfapi.DNSRecordListFilter, page *cfapi.PageOptions) ([]cfapi.DNSRecord, *cfapi.PageInfo, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID, "dns_records"), pageQuery(filter.Query(), page))
	if err != nil {
		return nil, nil, err
	}

	records, info, err := cfapi.DecodeList[cfapi.DNSRecord](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return records, info.Pages(), nil
}

// Iterate lazily walks all DNS records matching the filter.
func (c *DNSClient) Iterate(ctx context.Context, zoneID string, filter *cfapi.DNSRecordListFilter, perPage int) *cfapi.Iterator[cfapi.DNSRecord] {
	return cfapi.NewPageIterator(ctx, func(ctx context.Context, page, perPage int) ([]cfapi.DNSRecord, *cfapi.PageInfo, error) {
		return c.List(ctx, zoneID, filter, &cfapi.PageOptions{Page: page, PerPage: perPage})
	}, perPage)
}

// Create adds a DNS record to a zone.
func (c *DNSClient) Create(ctx context.Context, zoneID string, request *cfapi.DNSRecordRequest) (*cfapi.DNSRecord, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, cfapi.BuildPath("zones", zoneID, "dns_records"), request)
	if err != nil {
		return nil, err
	}

	record, err := cfapi.DecodeResult[cfapi.DNSRecord](resp.Body)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Get returns a single DNS record.
func (c *DNSClient) Get(ctx context.Context, zoneID, recordID string) (*cfapi.DNSRecord, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	if err := requireParam("recordID", recordID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID, "dns_records", recordID), "")
	if err != nil {
		return nil, err
	}

	record, err := cfapi.DecodeResult[cfapi.DNSRecord](resp.Body)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Update replaces a DNS record.
func (c *DNSClient) Update(ctx context.Context, zoneID, recordID string, request *cfapi.DNSRecordRequest) (*cfapi.DNSRecord, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	if err := requireParam("recordID", recordID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, cfapi.BuildPath("zones", zoneID, "dns_records", recordID), request)
	if err != nil {
		return nil, err
	}

	record, err := cfapi.DecodeResult[cfapi.DNSRecord](resp.Body)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Delete removes a DNS record.
func (c *DNSClient) Delete(ctx context.Context, zoneID, recordID string) error {
	if err := requireParam("zoneID", zoneID); err != nil {
		return err
	}

	if err := requireParam("recordID", recordID); err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, cfapi.BuildPath("zones", zoneID, "dns_records", recordID))
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}

// Scan triggers a scan for common DNS records on the zone's origin. The
// result may be empty when the scan queues asynchronously.
func (c *DNSClient) Scan(ctx context.Context, zoneID string) (*cfapi.DNSRecordScanResult, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, cfapi.BuildPath("zones", zoneID, "dns_records", "scan"), nil)
	if err != nil {
		return nil, err
	}

	result, err := cfapi.DecodeResult[cfapi.DNSRecordScanResult](resp.Body)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
