package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// AccountsClient implements cfapi.AccountsClient.
type AccountsClient struct {
	httpClient *internalhttp.Client
}

// List returns one page of accounts visible to the caller.
func (c *AccountsClient) List(ctx context.Context, filter *cfapi.AccountListFilter, page *cfapi.PageOptions) ([]cfapi.Account, *cfapi.PageInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/accounts", pageQuery(filter.Query(), page))
	if err != nil {
		return nil, nil, err
	}

	accounts, info, err := cfapi.DecodeList[cfapi.Account](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return accounts, info.Pages(), nil
}

// Iterate lazily walks all accounts matching the filter.
func (c *AccountsClient) Iterate(ctx context.Context, filter *cfapi.AccountListFilter, perPage int) *cfapi.Iterator[cfapi.Account] {
	return cfapi.NewPageIterator(ctx, func(ctx context.Context, page, perPage int) ([]cfapi.Account, *cfapi.PageInfo, error) {
		return c.List(ctx, filter, &cfapi.PageOptions{Page: page, PerPage: perPage})
	}, perPage)
}

// Get returns a single account.
func (c *AccountsClient) Get(ctx context.Context, accountID string) (*cfapi.Account, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("accounts", accountID), "")
	if err != nil {
		return nil, err
	}

	account, err := cfapi.DecodeResult[cfapi.Account](resp.Body)
	if err != nil {
		return nil, err
	}

	return &account, nil
}
