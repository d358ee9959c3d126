package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// UserClient implements cfapi.UserClient.
type UserClient struct {
	httpClient *internalhttp.Client
}

// Get returns the authenticated user.
func (c *UserClient) Get(ctx context.Context) (*cfapi.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", "")
	if err != nil {
		return nil, err
	}

	user, err := cfapi.DecodeResult[cfapi.User](resp.Body)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update edits the authenticated user's profile. Unset fields are left
// unchanged server-side.
func (c *UserClient) Update(ctx context.Context, request *cfapi.UserUpdateRequest) (*cfapi.User, error) {
	resp, err := c.httpClient.Patch(ctx, "/user", request)
	if err != nil {
		return nil, err
	}

	user, err := cfapi.DecodeResult[cfapi.User](resp.Body)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
