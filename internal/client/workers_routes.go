package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// WorkersRoutesClient implements cfapi.WorkersRoutesClient. Routes are a
// small, unpaginated collection.
type WorkersRoutesClient struct {
	httpClient *internalhttp.Client
}

// List returns all Workers routes in a zone.
func (c *WorkersRoutesClient) List(ctx context.Context, zoneID string) ([]cfapi.WorkersRoute, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID, "workers", "routes"), "")
	if err != nil {
		return nil, err
	}

	routes, _, err := cfapi.DecodeList[cfapi.WorkersRoute](resp.Body)

	return routes, err
}

// Create adds a Workers route to a zone.
func (c *WorkersRoutesClient) Create(ctx context.Context, zoneID string, request *cfapi.WorkersRouteRequest) (*cfapi.WorkersRoute, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, cfapi.BuildPath("zones", zoneID, "workers", "routes"), request)
	if err != nil {
		return nil, err
	}

	route, err := cfapi.DecodeResult[cfapi.WorkersRoute](resp.Body)
	if err != nil {
		return nil, err
	}

	return &route, nil
}

// Get returns a single Workers route.
func (c *WorkersRoutesClient) Get(ctx context.Context, zoneID, routeID string) (*cfapi.WorkersRoute, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	if err := requireParam("routeID", routeID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("zones", zoneID, "workers", "routes", routeID), "")
	if err != nil {
		return nil, err
	}

	route, err := cfapi.DecodeResult[cfapi.WorkersRoute](resp.Body)
	if err != nil {
		return nil, err
	}

	return &route, nil
}

// Update replaces a Workers route.
func (c *WorkersRoutesClient) Update(ctx context.Context, zoneID, routeID string, request *cfapi.WorkersRouteRequest) (*cfapi.WorkersRoute, error) {
	if err := requireParam("zoneID", zoneID); err != nil {
		return nil, err
	}

	if err := requireParam("routeID", routeID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, cfapi.BuildPath("zones", zoneID, "workers", "routes", routeID), request)
	if err != nil {
		return nil, err
	}

	route, err := cfapi.DecodeResult[cfapi.WorkersRoute](resp.Body)
	if err != nil {
		return nil, err
	}

	return &route, nil
}

// Delete removes a Workers route.
func (c *WorkersRoutesClient) Delete(ctx context.Context, zoneID, routeID string) error {
	if err := requireParam("zoneID", zoneID); err != nil {
		return err
	}

	if err := requireParam("routeID", routeID); err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, cfapi.BuildPath("zones", zoneID, "workers", "routes", routeID))
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}
