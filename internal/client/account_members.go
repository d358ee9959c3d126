package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// AccountMembersClient implements cfapi.AccountMembersClient.
type AccountMembersClient struct {
	httpClient *internalhttp.Client
}

// List returns one page of an account's members.
func (c *AccountMembersClient) List(ctx context.Context, accountID string, page *cfapi.PageOptions) ([]cfapi.AccountMember, *cfapi.PageInfo, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("accounts", accountID, "members"), pageQuery(cfapi.NewParams(), page))
	if err != nil {
		return nil, nil, err
	}

	members, info, err := cfapi.DecodeList[cfapi.AccountMember](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return members, info.Pages(), nil
}

// Iterate lazily walks all members of an account.
func (c *AccountMembersClient) Iterate(ctx context.Context, accountID string, perPage int) *cfapi.Iterator[cfapi.AccountMember] {
	return cfapi.NewPageIterator(ctx, func(ctx context.Context, page, perPage int) ([]cfapi.AccountMember, *cfapi.PageInfo, error) {
		return c.List(ctx, accountID, &cfapi.PageOptions{Page: page, PerPage: perPage})
	}, perPage)
}

// Get returns a single account member.
func (c *AccountMembersClient) Get(ctx context.Context, accountID, memberID string) (*cfapi.AccountMember, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	if err := requireParam("memberID", memberID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("accounts", accountID, "members", memberID), "")
	if err != nil {
		return nil, err
	}

	member, err := cfapi.DecodeResult[cfapi.AccountMember](resp.Body)
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// Create invites a user into the account.
func (c *AccountMembersClient) Create(ctx context.Context, accountID string, invite *cfapi.AccountMemberInvite) (*cfapi.AccountMember, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, cfapi.BuildPath("accounts", accountID, "members"), invite)
	if err != nil {
		return nil, err
	}

	member, err := cfapi.DecodeResult[cfapi.AccountMember](resp.Body)
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// Update changes a member's roles.
func (c *AccountMembersClient) Update(ctx context.Context, accountID, memberID string, request *cfapi.AccountMemberUpdateRequest) (*cfapi.AccountMember, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	if err := requireParam("memberID", memberID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, cfapi.BuildPath("accounts", accountID, "members", memberID), request)
	if err != nil {
		return nil, err
	}

	member, err := cfapi.DecodeResult[cfapi.AccountMember](resp.Body)
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// Delete removes a member from the account.
func (c *AccountMembersClient) Delete(ctx context.Context, accountID, memberID string) error {
	if err := requireParam("accountID", accountID); err != nil {
		return err
	}

	if err := requireParam("memberID", memberID); err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, cfapi.BuildPath("accounts", accountID, "members", memberID))
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}
