package cfapi

import (
	"context"
	"time"
)

// PageOptions selects one page of an offset-paginated list. The zero value
// leaves the server defaults in place.
type PageOptions struct {
	Page    int
	PerPage int
}

// ZonesClient manages zones.
type ZonesClient interface {
	List(ctx context.Context, filter *ZoneListFilter, page *PageOptions) ([]Zone, *PageInfo, error)
	Iterate(ctx context.Context, filter *ZoneListFilter, perPage int) *Iterator[Zone]
	Get(ctx context.Context, zoneID string) (*Zone, error)
	Delete(ctx context.Context, zoneID string) error
}

// DNSClient manages DNS records within a zone.
type DNSClient interface {
	List(ctx context.Context, zoneID string, filter *DNSRecordListFilter, page *PageOptions) ([]DNSRecord, *PageInfo, error)
	Iterate(ctx context.Context, zoneID string, filter *DNSRecordListFilter, perPage int) *Iterator[DNSRecord]
	Create(ctx context.Context, zoneID string, request *DNSRecordRequest) (*DNSRecord, error)
	Get(ctx context.Context, zoneID, recordID string) (*DNSRecord, error)
	Update(ctx context.Context, zoneID, recordID string, request *DNSRecordRequest) (*DNSRecord, error)
	Delete(ctx context.Context, zoneID, recordID string) error
	Scan(ctx context.Context, zoneID string) (*DNSRecordScanResult, error)
}

// WorkersRoutesClient manages Workers routes within a zone.
type WorkersRoutesClient interface {
	List(ctx context.Context, zoneID string) ([]WorkersRoute, error)
	Create(ctx context.Context, zoneID string, request *WorkersRouteRequest) (*WorkersRoute, error)
	Get(ctx context.Context, zoneID, routeID string) (*WorkersRoute, error)
	Update(ctx context.Context, zoneID, routeID string, request *WorkersRouteRequest) (*WorkersRoute, error)
	Delete(ctx context.Context, zoneID, routeID string) error
}

// R2Client administers R2 buckets. The jurisdiction argument travels as a
// header and is omitted entirely when zero.
type R2Client interface {
	CreateBucket(ctx context.Context, accountID string, request *R2BucketCreateRequest, jurisdiction Enum) (*R2Bucket, error)
	ListBuckets(ctx context.Context, accountID string, filter *R2BucketListFilter, cursor string) ([]R2Bucket, *CursorInfo, error)
	IterateBuckets(ctx context.Context, accountID string, filter *R2BucketListFilter) *Iterator[R2Bucket]
	GetBucket(ctx context.Context, accountID, bucket string, jurisdiction Enum) (*R2Bucket, error)
	DeleteBucket(ctx context.Context, accountID, bucket string, jurisdiction Enum) error

	GetCORS(ctx context.Context, accountID, bucket string, jurisdiction Enum) (*R2CORSConfig, error)
	PutCORS(ctx context.Context, accountID, bucket string, config *R2CORSConfig, jurisdiction Enum) error
	DeleteCORS(ctx context.Context, accountID, bucket string, jurisdiction Enum) error

	GetLifecycle(ctx context.Context, accountID, bucket string, jurisdiction Enum) (*R2LifecycleConfig, error)
	PutLifecycle(ctx context.Context, accountID, bucket string, config *R2LifecycleConfig, jurisdiction Enum) error

	GetLock(ctx context.Context, accountID, bucket string, jurisdiction Enum) (*R2LockConfig, error)
	PutLock(ctx context.Context, accountID, bucket string, config *R2LockConfig, jurisdiction Enum) error

	GetSippy(ctx context.Context, accountID, bucket string, jurisdiction Enum) (*R2Sippy, error)
	PutSippy(ctx context.Context, accountID, bucket string, request *R2SippyPutRequest, jurisdiction Enum) (*R2Sippy, error)
	DeleteSippy(ctx context.Context, accountID, bucket string, jurisdiction Enum) error
}

// AuditLogsClient reads account audit logs. The v1 generation paginates by
// offset with underscore filter names; the v2 generation paginates by cursor
// with dot filter names.
type AuditLogsClient interface {
	List(ctx context.Context, accountID string, filter *AuditLogFilter, page *PageOptions) ([]AuditLog, *PageInfo, error)
	Iterate(ctx context.Context, accountID string, filter *AuditLogFilter, perPage int) *Iterator[AuditLog]
	ListV2(ctx context.Context, accountID string, filter *AuditLogV2Filter, cursor string) ([]AuditLog, *CursorInfo, error)
	IterateV2(ctx context.Context, accountID string, filter *AuditLogV2Filter) *Iterator[AuditLog]
}

// MembershipsClient manages the caller's account memberships.
type MembershipsClient interface {
	List(ctx context.Context, filter *MembershipListFilter, page *PageOptions) ([]Membership, *PageInfo, error)
	Iterate(ctx context.Context, filter *MembershipListFilter, perPage int) *Iterator[Membership]
	Get(ctx context.Context, membershipID string) (*Membership, error)
	Update(ctx context.Context, membershipID string, request *MembershipUpdateRequest) (*Membership, error)
	Delete(ctx context.Context, membershipID string) error
}

// AccountMembersClient manages an account's members and invitations.
type AccountMembersClient interface {
	List(ctx context.Context, accountID string, page *PageOptions) ([]AccountMember, *PageInfo, error)
	Iterate(ctx context.Context, accountID string, perPage int) *Iterator[AccountMember]
	Get(ctx context.Context, accountID, memberID string) (*AccountMember, error)
	Create(ctx context.Context, accountID string, invite *AccountMemberInvite) (*AccountMember, error)
	Update(ctx context.Context, accountID, memberID string, request *AccountMemberUpdateRequest) (*AccountMember, error)
	Delete(ctx context.Context, accountID, memberID string) error
}

// SubscriptionsClient manages account subscriptions.
type SubscriptionsClient interface {
	List(ctx context.Context, accountID string) ([]Subscription, error)
	Create(ctx context.Context, accountID string, request *SubscriptionRequest) (*Subscription, error)
	Update(ctx context.Context, accountID, subscriptionID string, request *SubscriptionRequest) (*Subscription, error)
	Delete(ctx context.Context, accountID, subscriptionID string) error
}

// ZoneSettingsClient reads and edits zone settings.
type ZoneSettingsClient interface {
	List(ctx context.Context, zoneID string) ([]ZoneSetting, error)
	Get(ctx context.Context, zoneID, settingID string) (*ZoneSetting, error)
	Update(ctx context.Context, zoneID, settingID string, request *ZoneSettingUpdateRequest) (*ZoneSetting, error)
}

// UserClient manages the authenticated user.
type UserClient interface {
	Get(ctx context.Context) (*User, error)
	Update(ctx context.Context, request *UserUpdateRequest) (*User, error)
}

// AccountsClient reads accounts visible to the caller.
type AccountsClient interface {
	List(ctx context.Context, filter *AccountListFilter, page *PageOptions) ([]Account, *PageInfo, error)
	Iterate(ctx context.Context, filter *AccountListFilter, perPage int) *Iterator[Account]
	Get(ctx context.Context, accountID string) (*Account, error)
}

// CoreClients provides access to user, account, and membership clients.
type CoreClients interface {
	User() UserClient
	Accounts() AccountsClient
	Memberships() MembershipsClient
	AccountMembers() AccountMembersClient
	Subscriptions() SubscriptionsClient
}

// ZoneScopedClients provides access to zone-scoped resource clients.
type ZoneScopedClients interface {
	Zones() ZonesClient
	DNS() DNSClient
	WorkersRoutes() WorkersRoutesClient
	ZoneSettings() ZoneSettingsClient
}

// StorageClients provides access to object-storage administration clients.
type StorageClients interface {
	R2() R2Client
}

// MonitoringClients provides access to audit clients.
type MonitoringClients interface {
	AuditLogs() AuditLogsClient
}

// Client provides access to all resource-specific clients.
type Client interface {
	CoreClients
	ZoneScopedClients
	StorageClients
	MonitoringClients

	// VerifyToken checks the configured credential against the API.
	VerifyToken(ctx context.Context) (*TokenVerification, error)
}

// TokenVerification is the result of a credential check.
type TokenVerification struct {
	ID     string `json:"id"     yaml:"id"`
	Status Enum   `json:"status" yaml:"status"`
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cfapi.Client.
//
// Authentication: provide either APIToken (sent as a Bearer credential) or
// the APIKey/APIEmail pair (sent as X-Auth-Key/X-Auth-Email headers). The
// token takes precedence when both are set.
//
// Retries are a transport policy for transient failures (429, 5xx,
// connection errors); the core never retries on its own and classifies
// failures so a caller-side policy can decide.
type Config struct {
	// Endpoint is the API base URL. The facade normalizes it by trimming a
	// trailing slash and defaulting the scheme to https.
	Endpoint string

	// APIToken is a scoped API token, sent as "Authorization: Bearer".
	APIToken string
	// APIKey is the legacy global key, sent with APIEmail.
	APIKey string
	// APIEmail accompanies APIKey.
	APIEmail string

	// HTTPTimeout is an optional default timeout; per-call contexts are the
	// preferred control.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Interceptors is an optional chain run around every request.
	Interceptors *InterceptorChain
	// Cache optionally caches successful GET responses. Entries are keyed by
	// URL and stay valid until the cache's TTL; mutations through this client
	// invalidate their own resource URL.
	Cache Cache
}
