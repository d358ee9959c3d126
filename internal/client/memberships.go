package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// MembershipsClient implements cfapi.MembershipsClient.
type MembershipsClient struct {
	httpClient *internalhttp.Client
}

// List returns one page of the caller's account memberships.
func (c *MembershipsClient) List(ctx context.Context, filter *cfapi.MembershipListFilter, page *cfapi.PageOptions) ([]cfapi.Membership, *cfapi.PageInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/memberships", pageQuery(filter.Query(), page))
	if err != nil {
		return nil, nil, err
	}

	memberships, info, err := cfapi.DecodeList[cfapi.Membership](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return memberships, info.Pages(), nil
}

// Iterate lazily walks all memberships matching the filter.
func (c *MembershipsClient) Iterate(ctx context.Context, filter *cfapi.MembershipListFilter, perPage int) *cfapi.Iterator[cfapi.Membership] {
	return cfapi.NewPageIterator(ctx, func(ctx context.Context, page, perPage int) ([]cfapi.Membership, *cfapi.PageInfo, error) {
		return c.List(ctx, filter, &cfapi.PageOptions{Page: page, PerPage: perPage})
	}, perPage)
}

// Get returns a single membership.
func (c *MembershipsClient) Get(ctx context.Context, membershipID string) (*cfapi.Membership, error) {
	if err := requireParam("membershipID", membershipID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("memberships", membershipID), "")
	if err != nil {
		return nil, err
	}

	membership, err := cfapi.DecodeResult[cfapi.Membership](resp.Body)
	if err != nil {
		return nil, err
	}

	return &membership, nil
}

// Update accepts or rejects a pending membership.
func (c *MembershipsClient) Update(ctx context.Context, membershipID string, request *cfapi.MembershipUpdateRequest) (*cfapi.Membership, error) {
	if err := requireParam("membershipID", membershipID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, cfapi.BuildPath("memberships", membershipID), request)
	if err != nil {
		return nil, err
	}

	membership, err := cfapi.DecodeResult[cfapi.Membership](resp.Body)
	if err != nil {
		return nil, err
	}

	return &membership, nil
}

// Delete leaves an account.
func (c *MembershipsClient) Delete(ctx context.Context, membershipID string) error {
	if err := requireParam("membershipID", membershipID); err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, cfapi.BuildPath("memberships", membershipID))
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}
