package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// ZonesClient implements cfapi.ZonesClient.
type ZonesClient struct {
	httpClient *internalhttp.Client
}

// List returns one page of zones.
func (c *ZonesClient) List(ctx context.Context, filter *cfapi.ZoneListFilter, page *cfapi.PageOptions) ([]cfapi.Zone, *cfapi.PageInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/zones", pageQuery(filter.Query(), page))
	if err != nil {
		return nil, nil, err
	}

	zones, info, err := cfapi.DecodeList[cfapi.Zone](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return zones, info.Pages(), nil
}

// Iterate lazily walks all zones matching the filter.
func (c *ZonesClient) Iterate(ctx context.Context, filter *cfapi.ZoneListFilter, perPage int) *cfapi.Iterator[cfapi.Zone] {
	return cfapi.NewPageIterator(ctx, func(ctx context.Context, page, perPage int) ([]cfapi.Zone, *cfapi.PageInfo, error) {
		return c.List(ctx, filter, &cfapi.PageOptions{Page: page, PerPage: perPage})
	}, perPage)
}

// Get returns a single zone.
func (c *ZonesClient) Get(ctx context.Context, zoneID string) (*cfapi.Zone, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID), "")
	if err != nil {
		return nil, err
	}

	zone, err := cfapi.DecodeResult[cfapi.Zone](resp.Body)
	if err != nil {
		return nil, err
	}

	return &zone, nil
}

// Delete removes a zone.
func (c *ZonesClient) Delete(ctx context.Context, zoneID string) error {
	if err := requireParam("zoneID", zoneID); err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, cfapi.BuildPath("zones", zoneID))
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}
