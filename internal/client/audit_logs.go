package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// AuditLogsClient implements cfapi.AuditLogsClient. The v1 endpoint paginates
// by offset; the v2 endpoint paginates by cursor and names its filters with
// dots.
type AuditLogsClient struct {
	httpClient *internalhttp.Client
}

// List returns one page of v1 audit-log entries for an account.
func (c *AuditLogsClient) List(ctx context.Context, accountID string, filter *cfapi.AuditLogFilter, page *cfapi.PageOptions) ([]cfapi.AuditLog, *cfapi.PageInfo, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("accounts", accountID, "audit_logs"), pageQuery(filter.Query(), page))
	if err != nil {
		return nil, nil, err
	}

	logs, info, err := cfapi.DecodeList[cfapi.AuditLog](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return logs, info.Pages(), nil
}

// Iterate lazily walks v1 audit-log entries matching the filter.
func (c *AuditLogsClient) Iterate(ctx context.Context, accountID string, filter *cfapi.AuditLogFilter, perPage int) *cfapi.Iterator[cfapi.AuditLog] {
	return cfapi.NewPageIterator(ctx, func(ctx context.Context, page, perPage int) ([]cfapi.AuditLog, *cfapi.PageInfo, error) {
		return c.List(ctx, accountID, filter, &cfapi.PageOptions{Page: page, PerPage: perPage})
	}, perPage)
}

// ListV2 returns one cursor page of v2 audit-log entries for an account. An
// empty cursor requests the first page; the filter is carried unchanged into
// every page's request.
func (c *AuditLogsClient) ListV2(ctx context.Context, accountID string, filter *cfapi.AuditLogV2Filter, cursor string) ([]cfapi.AuditLog, *cfapi.CursorInfo, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, nil, err
	}

	perPage := 0
	if filter != nil {
		perPage = filter.PerPage
	}

	query := filter.Query().Cursor(cursor, perPage).Encode()

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("accounts", accountID, "logs", "audit"), query)
	if err != nil {
		return nil, nil, err
	}

	logs, info, err := cfapi.DecodeList[cfapi.AuditLog](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return logs, info.CursorView(), nil
}

// IterateV2 lazily walks v2 audit-log entries matching the filter.
func (c *AuditLogsClient) IterateV2(ctx context.Context, accountID string, filter *cfapi.AuditLogV2Filter) *cfapi.Iterator[cfapi.AuditLog] {
	return cfapi.NewCursorIterator(ctx, func(ctx context.Context, cursor string) ([]cfapi.AuditLog, *cfapi.CursorInfo, error) {
		return c.ListV2(ctx, accountID, filter, cursor)
	})
}
