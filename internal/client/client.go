// Package client implements the cfapi.Client interface against the live API.
package client

import (
	"context"
	"fmt"

	"github.com/Alos-no/cfapi/internal/auth"
	"github.com/Alos-no/cfapi/internal/constants"
	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// Client is the concrete implementation of cfapi.Client.
type Client struct {
	config     *cfapi.Config
	httpClient *internalhttp.Client

	zones          *ZonesClient
	dns            *DNSClient
	workersRoutes  *WorkersRoutesClient
	r2             *R2Client
	auditLogs      *AuditLogsClient
	memberships    *MembershipsClient
	accountMembers *AccountMembersClient
	subscriptions  *SubscriptionsClient
	zoneSettings   *ZoneSettingsClient
	user           *UserClient
	accounts       *AccountsClient
}

// New creates a client from the given configuration.
func New(config *cfapi.Config) (*Client, error) {
	if config == nil {
		return nil, cfapi.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, cfapi.ErrEndpointRequired
	}

	credentials, err := buildCredentials(config)
	if err != nil {
		return nil, err
	}

	client := &Client{config: config}
	client.httpClient = internalhttp.NewClient(config.Endpoint, credentials, httpOptions(config)...)
	client.initializeResourceClients()

	return client, nil
}

func buildCredentials(config *cfapi.Config) (auth.Credentials, error) {
	switch {
	case config.APIToken != "":
		return &auth.TokenCredentials{Token: config.APIToken}, nil
	case config.APIKey != "" && config.APIEmail != "":
		return &auth.KeyCredentials{Key: config.APIKey, Email: config.APIEmail}, nil
	default:
		return nil, cfapi.ErrCredentialsRequired
	}
}

func httpOptions(config *cfapi.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		opts = append(opts, internalhttp.WithInterceptors(config.Interceptors))
	}

	if config.Cache != nil {
		opts = append(opts, internalhttp.WithResponseCache(config.Cache))
	}

	retryMax := config.RetryMax
	waitMin := config.RetryWaitMin
	waitMax := config.RetryWaitMax

	if waitMin <= 0 {
		waitMin = constants.DefaultRetryWaitMin
	}

	if waitMax <= 0 {
		waitMax = constants.DefaultRetryWaitMax
	}

	if retryMax > 0 {
		opts = append(opts, internalhttp.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.zones = &ZonesClient{httpClient: c.httpClient}
	c.dns = &DNSClient{httpClient: c.httpClient}
	c.workersRoutes = &WorkersRoutesClient{httpClient: c.httpClient}
	c.r2 = &R2Client{httpClient: c.httpClient}
	c.auditLogs = &AuditLogsClient{httpClient: c.httpClient}
	c.memberships = &MembershipsClient{httpClient: c.httpClient}
	c.accountMembers = &AccountMembersClient{httpClient: c.httpClient}
	c.subscriptions = &SubscriptionsClient{httpClient: c.httpClient}
	c.zoneSettings = &ZoneSettingsClient{httpClient: c.httpClient}
	c.user = &UserClient{httpClient: c.httpClient}
	c.accounts = &AccountsClient{httpClient: c.httpClient}
}

// Zones returns the zones client.
func (c *Client) Zones() cfapi.ZonesClient { return c.zones }

// DNS returns the DNS records client.
func (c *Client) DNS() cfapi.DNSClient { return c.dns }

// WorkersRoutes returns the Workers routes client.
func (c *Client) WorkersRoutes() cfapi.WorkersRoutesClient { return c.workersRoutes }

// R2 returns the R2 bucket administration client.
func (c *Client) R2() cfapi.R2Client { return c.r2 }

// AuditLogs returns the audit logs client.
func (c *Client) AuditLogs() cfapi.AuditLogsClient { return c.auditLogs }

// Memberships returns the memberships client.
func (c *Client) Memberships() cfapi.MembershipsClient { return c.memberships }

// AccountMembers returns the account members client.
func (c *Client) AccountMembers() cfapi.AccountMembersClient { return c.accountMembers }

// Subscriptions returns the subscriptions client.
func (c *Client) Subscriptions() cfapi.SubscriptionsClient { return c.subscriptions }

// ZoneSettings returns the zone settings client.
func (c *Client) ZoneSettings() cfapi.ZoneSettingsClient { return c.zoneSettings }

// User returns the authenticated-user client.
func (c *Client) User() cfapi.UserClient { return c.user }

// Accounts returns the accounts client.
func (c *Client) Accounts() cfapi.AccountsClient { return c.accounts }

// VerifyToken checks the configured credential against the API. The probe is
// bounded by a short timeout of its own; a hung verification should not stall
// callers for the full request timeout.
func (c *Client) VerifyToken(ctx context.Context) (*cfapi.TokenVerification, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	resp, err := c.httpClient.Get(ctx, "/user/tokens/verify", "")
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	verification, err := cfapi.DecodeResult[cfapi.TokenVerification](resp.Body)
	if err != nil {
		return nil, err
	}

	return &verification, nil
}

// requireParam guards path identifiers before any request is built. An empty
// identifier would otherwise collapse path segments and hit the wrong route.
func requireParam(name, value string) error {
	if value == "" {
		return &cfapi.MissingParamError{Param: name}
	}

	return nil
}

// pageQuery merges a filter's parameters with offset pagination, pagination
// last. Page sizes beyond the API maximum are clamped rather than rejected.
func pageQuery(params *cfapi.Params, page *cfapi.PageOptions) string {
	if page != nil {
		perPage := page.PerPage
		if perPage > constants.MaxPageSize {
			perPage = constants.MaxPageSize
		}

		params.Page(page.Page, perPage)
	}

	return params.Encode()
}
