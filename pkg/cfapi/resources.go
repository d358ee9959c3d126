package cfapi

import (
	"time"
)

// Ptr returns a pointer to the given value, for optional filter and request
// fields.
func Ptr[T any](value T) *T {
	return &value
}

// Zones

// Zone statuses.
var (
	ZoneStatusActive       = EnumOf("active")
	ZoneStatusPending      = EnumOf("pending")
	ZoneStatusInitializing = EnumOf("initializing")
	ZoneStatusMoved        = EnumOf("moved")
	ZoneStatusDeleted      = EnumOf("deleted")
)

// Zone types.
var (
	ZoneTypeFull      = EnumOf("full")
	ZoneTypePartial   = EnumOf("partial")
	ZoneTypeSecondary = EnumOf("secondary")
)

// AccountRef identifies the account that owns a resource.
type AccountRef struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Zone represents a zone.
type Zone struct {
	ID              string     `json:"id"                     yaml:"id"`
	Name            string     `json:"name"                   yaml:"name"`
	Status          Enum       `json:"status"                 yaml:"status"`
	Type            Enum       `json:"type"                   yaml:"type"`
	Paused          bool       `json:"paused"                 yaml:"paused"`
	DevelopmentMode int        `json:"development_mode"       yaml:"development_mode"`
	NameServers     []string   `json:"name_servers,omitempty" yaml:"name_servers,omitempty"`
	Account         AccountRef `json:"account"                yaml:"account"`
	CreatedOn       *time.Time `json:"created_on,omitempty"   yaml:"created_on,omitempty"`
	ModifiedOn      *time.Time `json:"modified_on,omitempty"  yaml:"modified_on,omitempty"`
	ActivatedOn     *time.Time `json:"activated_on,omitempty" yaml:"activated_on,omitempty"`
}

// ZoneListFilter narrows a zone list request. Nil fields are omitted from
// the query string.
type ZoneListFilter struct {
	Name      *string
	Status    Enum
	AccountID *string
	Order     *string
	Direction *string
}

// Query builds the filter's query parameters.
func (f *ZoneListFilter) Query() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	return params.
		String("name", f.Name).
		Enum("status", f.Status).
		String("account id", f.AccountID).
		String("order", f.Order).
		String("direction", f.Direction)
}

// DNS records

// DNS record types.
var (
	DNSRecordTypeA     = EnumOf("A")
	DNSRecordTypeAAAA  = EnumOf("AAAA")
	DNSRecordTypeCNAME = EnumOf("CNAME")
	DNSRecordTypeTXT   = EnumOf("TXT")
	DNSRecordTypeMX    = EnumOf("MX")
	DNSRecordTypeNS    = EnumOf("NS")
	DNSRecordTypeSRV   = EnumOf("SRV")
	DNSRecordTypeCAA   = EnumOf("CAA")
)

// DNSRecord represents a DNS record in a zone.
type DNSRecord struct {
	ID         string     `json:"id"                    yaml:"id"`
	ZoneID     string     `json:"zone_id,omitempty"     yaml:"zone_id,omitempty"`
	ZoneName   string     `json:"zone_name,omitempty"   yaml:"zone_name,omitempty"`
	Name       string     `json:"name"                  yaml:"name"`
	Type       Enum       `json:"type"                  yaml:"type"`
	Content    string     `json:"content"               yaml:"content"`
	TTL        int        `json:"ttl"                   yaml:"ttl"`
	Priority   *int       `json:"priority,omitempty"    yaml:"priority,omitempty"`
	Proxiable  bool       `json:"proxiable"             yaml:"proxiable"`
	Proxied    *bool      `json:"proxied,omitempty"     yaml:"proxied,omitempty"`
	Comment    *string    `json:"comment,omitempty"     yaml:"comment,omitempty"`
	Tags       []string   `json:"tags,omitempty"        yaml:"tags,omitempty"`
	CreatedOn  *time.Time `json:"created_on,omitempty"  yaml:"created_on,omitempty"`
	ModifiedOn *time.Time `json:"modified_on,omitempty" yaml:"modified_on,omitempty"`
	Meta       Document   `json:"meta,omitempty"        yaml:"meta,omitempty"`
}

// DNSRecordRequest creates or replaces a DNS record. Optional fields are
// omitted from the request body when unset, never sent as null.
type DNSRecordRequest struct {
	Type     Enum     `json:"type"`
	Name     string   `json:"name"`
	Content  string   `json:"content"`
	TTL      int      `json:"ttl,omitempty"`
	Priority *int     `json:"priority,omitempty"`
	Proxied  *bool    `json:"proxied,omitempty"`
	Comment  *string  `json:"comment,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// DNSRecordListFilter narrows a DNS record list request.
type DNSRecordListFilter struct {
	Type      Enum
	Name      *string
	Content   *string
	Proxied   *bool
	Match     *string
	Order     *string
	Direction *string
	Comment   *string
	Tags      []string
}

// Query builds the filter's query parameters.
func (f *DNSRecordListFilter) Query() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	return params.
		Enum("type", f.Type).
		String("name", f.Name).
		String("content", f.Content).
		Bool("proxied", f.Proxied).
		String("match", f.Match).
		String("order", f.Order).
		String("direction", f.Direction).
		String("comment", f.Comment).
		Strings("tag", f.Tags)
}

// DNSRecordScanResult reports the outcome of a record scan. The scan is a
// trigger action; the API may return an empty result, which decodes to the
// zero value.
type DNSRecordScanResult struct {
	RecsAdded          int `json:"recs_added"           yaml:"recs_added"`
	TotalRecordsParsed int `json:"total_records_parsed" yaml:"total_records_parsed"`
}

// Workers routes

// WorkersRoute maps a URL pattern to a Workers script. Script is null when
// the route is disabled.
type WorkersRoute struct {
	ID      string  `json:"id"               yaml:"id"`
	Pattern string  `json:"pattern"          yaml:"pattern"`
	Script  *string `json:"script,omitempty" yaml:"script,omitempty"`
}

// WorkersRouteRequest creates or replaces a Workers route.
type WorkersRouteRequest struct {
	Pattern string  `json:"pattern"`
	Script  *string `json:"script,omitempty"`
}

// R2 buckets

// R2 jurisdictions, passed via the cf-r2-jurisdiction header. The header is
// not sent at all when the value is zero.
var (
	R2JurisdictionDefault = Enum{}
	R2JurisdictionEU      = EnumOf("eu")
	R2JurisdictionFedRAMP = EnumOf("fedramp")
)

// R2 storage classes.
var (
	R2StorageClassStandard         = EnumOf("Standard")
	R2StorageClassInfrequentAccess = EnumOf("InfrequentAccess")
)

// R2Bucket represents an R2 bucket.
type R2Bucket struct {
	Name         string     `json:"name"                    yaml:"name"`
	CreationDate *time.Time `json:"creation_date,omitempty" yaml:"creation_date,omitempty"`
	Location     Enum       `json:"location,omitempty"      yaml:"location,omitempty"`
	StorageClass Enum       `json:"storage_class,omitempty" yaml:"storage_class,omitempty"`
	Jurisdiction Enum       `json:"jurisdiction,omitempty"  yaml:"jurisdiction,omitempty"`
}

// R2BucketCreateRequest creates a bucket. The jurisdiction travels in a
// header, not the body, and is supplied separately.
type R2BucketCreateRequest struct {
	Name         string `json:"name"`
	LocationHint Enum   `json:"locationHint,omitempty"`
	StorageClass Enum   `json:"storageClass,omitempty"`
}

// R2BucketListFilter narrows a bucket list request. Bucket listing is
// cursor-paginated.
type R2BucketListFilter struct {
	NameContains *string
	StartAfter   *string
	Direction    *string
	Jurisdiction Enum
	PerPage      int
}

// Query builds the filter's query parameters, without pagination.
func (f *R2BucketListFilter) Query() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	return params.
		String("name contains", f.NameContains).
		String("start after", f.StartAfter).
		String("direction", f.Direction)
}

// R2BucketList is the result shape of a bucket list request.
type R2BucketList struct {
	Buckets []R2Bucket `json:"buckets" yaml:"buckets"`
}

// R2CORSRule is one CORS rule on a bucket.
type R2CORSRule struct {
	ID            *string       `json:"id,omitempty"            yaml:"id,omitempty"`
	Allowed       R2CORSAllowed `json:"allowed"                 yaml:"allowed"`
	ExposeHeaders []string      `json:"exposeHeaders,omitempty" yaml:"exposeHeaders,omitempty"`
	MaxAgeSeconds *int          `json:"maxAgeSeconds,omitempty" yaml:"maxAgeSeconds,omitempty"`
}

// R2CORSAllowed lists the origins, methods, and headers a rule admits.
type R2CORSAllowed struct {
	Origins []string `json:"origins"           yaml:"origins"`
	Methods []string `json:"methods"           yaml:"methods"`
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// R2CORSConfig is a bucket's full CORS rule set.
type R2CORSConfig struct {
	Rules []R2CORSRule `json:"rules" yaml:"rules"`
}

// R2LifecycleCondition scopes a lifecycle rule to a key prefix.
type R2LifecycleCondition struct {
	Prefix string `json:"prefix" yaml:"prefix"`
}

// R2LifecycleAge triggers a lifecycle transition after an object age.
type R2LifecycleAge struct {
	Type   string `json:"type"             yaml:"type"`
	MaxAge int    `json:"maxAge,omitempty" yaml:"maxAge,omitempty"`
}

// R2LifecycleRule is one lifecycle rule on a bucket.
type R2LifecycleRule struct {
	ID                      string                `json:"id"                                yaml:"id"`
	Enabled                 bool                  `json:"enabled"                           yaml:"enabled"`
	Conditions              *R2LifecycleCondition `json:"conditions,omitempty"              yaml:"conditions,omitempty"`
	DeleteObjectsTransition *R2LifecycleAge       `json:"deleteObjectsTransition,omitempty" yaml:"deleteObjectsTransition,omitempty"`
}

// R2LifecycleConfig is a bucket's full lifecycle rule set.
type R2LifecycleConfig struct {
	Rules []R2LifecycleRule `json:"rules" yaml:"rules"`
}

// R2LockCondition controls how long a lock rule retains objects. Exactly one
// of MaxAgeSeconds, Date, or Indefinite is set.
type R2LockCondition struct {
	Type          string     `json:"type"                    yaml:"type"`
	MaxAgeSeconds *int       `json:"maxAgeSeconds,omitempty" yaml:"maxAgeSeconds,omitempty"`
	Date          *time.Time `json:"date,omitempty"          yaml:"date,omitempty"`
}

// R2LockRule is one object-lock rule on a bucket.
type R2LockRule struct {
	ID        string          `json:"id"               yaml:"id"`
	Enabled   bool            `json:"enabled"          yaml:"enabled"`
	Prefix    *string         `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Condition R2LockCondition `json:"condition"        yaml:"condition"`
}

// R2LockConfig is a bucket's full lock rule set.
type R2LockConfig struct {
	Rules []R2LockRule `json:"rules" yaml:"rules"`
}

// Sippy source providers.
var (
	SippyProviderAWS = EnumOf("aws")
	SippyProviderGCS = EnumOf("gcs")
	SippyProviderR2  = EnumOf("r2")
)

// R2SippySource describes the external bucket Sippy migrates from.
type R2SippySource struct {
	Provider Enum    `json:"provider"         yaml:"provider"`
	Bucket   string  `json:"bucket"           yaml:"bucket"`
	Region   *string `json:"region,omitempty" yaml:"region,omitempty"`
}

// R2SippyDestination describes the R2 bucket Sippy migrates into.
type R2SippyDestination struct {
	Provider Enum   `json:"provider" yaml:"provider"`
	Bucket   string `json:"bucket"   yaml:"bucket"`
}

// R2Sippy is a bucket's incremental-migration state.
type R2Sippy struct {
	Enabled     bool                `json:"enabled"               yaml:"enabled"`
	Source      *R2SippySource      `json:"source,omitempty"      yaml:"source,omitempty"`
	Destination *R2SippyDestination `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// R2SippyPutRequest enables Sippy on a bucket. Credentials are write-only.
type R2SippyPutRequest struct {
	Source      R2SippySourceCredentials      `json:"source"`
	Destination R2SippyDestinationCredentials `json:"destination"`
}

// R2SippySourceCredentials carries source provider credentials.
type R2SippySourceCredentials struct {
	Provider        Enum    `json:"provider"`
	Bucket          string  `json:"bucket"`
	Region          *string `json:"region,omitempty"`
	AccessKeyID     *string `json:"accessKeyId,omitempty"`
	SecretAccessKey *string `json:"secretAccessKey,omitempty"`
}

// R2SippyDestinationCredentials carries destination credentials.
type R2SippyDestinationCredentials struct {
	Provider        Enum    `json:"provider,omitempty"`
	AccessKeyID     *string `json:"accessKeyId,omitempty"`
	SecretAccessKey *string `json:"secretAccessKey,omitempty"`
}

// Audit logs

// AuditLogAction describes what an audit-log entry recorded.
type AuditLogAction struct {
	Type   string `json:"type"   yaml:"type"`
	Result bool   `json:"result" yaml:"result"`
}

// AuditLogActor identifies who performed the action.
type AuditLogActor struct {
	ID    string `json:"id"              yaml:"id"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	IP    string `json:"ip,omitempty"    yaml:"ip,omitempty"`
	Type  Enum   `json:"type"            yaml:"type"`
}

// AuditLogResource identifies what the action targeted.
type AuditLogResource struct {
	ID   string `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// AuditLog is one audit-log entry. Metadata, OldValue, and NewValue are
// free-form payloads with no fixed schema.
type AuditLog struct {
	ID        string           `json:"id"                  yaml:"id"`
	Action    AuditLogAction   `json:"action"              yaml:"action"`
	Actor     AuditLogActor    `json:"actor"               yaml:"actor"`
	Resource  AuditLogResource `json:"resource"            yaml:"resource"`
	Interface string           `json:"interface,omitempty" yaml:"interface,omitempty"`
	Metadata  Document         `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
	OldValue  Document         `json:"old_value,omitempty" yaml:"old_value,omitempty"`
	NewValue  Document         `json:"new_value,omitempty" yaml:"new_value,omitempty"`
	When      *time.Time       `json:"when,omitempty"      yaml:"when,omitempty"`
}

// AuditLogFilter narrows a v1 audit-log list request. The v1 generation uses
// underscore parameter names and offset pagination.
type AuditLogFilter struct {
	ActorEmail   *string
	ActorIP      *string
	ActionType   *string
	Since        *time.Time
	Before       *time.Time
	Direction    *string
	HideUserLogs *bool
	ZoneName     *string
}

// Query builds the filter's query parameters.
func (f *AuditLogFilter) Query() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	return params.
		String("actor email", f.ActorEmail).
		String("actor ip", f.ActorIP).
		String("action type", f.ActionType).
		Time("since", f.Since).
		Time("before", f.Before).
		String("direction", f.Direction).
		Bool("hide user logs", f.HideUserLogs).
		String("zone name", f.ZoneName)
}

// AuditLogV2Filter narrows a v2 audit-log list request. The v2 generation
// joins filter names with dots and paginates by cursor; whether that naming
// split is versioning or accident, both styles are kept explicit rather than
// normalized.
type AuditLogV2Filter struct {
	ActionTypes  []string
	ActorEmail   *string
	ActorType    Enum
	ResourceType *string
	Since        *time.Time
	Before       *time.Time
	Direction    *string
	PerPage      int
}

// Query builds the filter's query parameters.
func (f *AuditLogV2Filter) Query() *Params {
	params := NewDotParams()
	if f == nil {
		return params
	}

	return params.
		Strings("action type", f.ActionTypes).
		String("actor email", f.ActorEmail).
		Enum("actor type", f.ActorType).
		String("resource type", f.ResourceType).
		Time("since", f.Since).
		Time("before", f.Before).
		String("direction", f.Direction)
}

// Memberships

// Membership statuses.
var (
	MembershipStatusAccepted = EnumOf("accepted")
	MembershipStatusPending  = EnumOf("pending")
	MembershipStatusRejected = EnumOf("rejected")
)

// Membership represents the caller's membership in an account.
type Membership struct {
	ID               string     `json:"id"                           yaml:"id"`
	Status           Enum       `json:"status"                       yaml:"status"`
	APIAccessEnabled *bool      `json:"api_access_enabled,omitempty" yaml:"api_access_enabled,omitempty"`
	Account          AccountRef `json:"account"                      yaml:"account"`
	Roles            []string   `json:"roles,omitempty"              yaml:"roles,omitempty"`
	Permissions      Document   `json:"permissions,omitempty"        yaml:"permissions,omitempty"`
}

// MembershipUpdateRequest accepts or rejects an invitation.
type MembershipUpdateRequest struct {
	Status Enum `json:"status"`
}

// MembershipListFilter narrows a membership list request.
type MembershipListFilter struct {
	Status      Enum
	AccountName *string
	Order       *string
	Direction   *string
}

// Query builds the filter's query parameters.
func (f *MembershipListFilter) Query() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	return params.
		Enum("status", f.Status).
		String("account name", f.AccountName).
		String("order", f.Order).
		String("direction", f.Direction)
}

// Account members

// MemberUser is the user half of an account member.
type MemberUser struct {
	ID               string  `json:"id"                   yaml:"id"`
	Email            string  `json:"email"                yaml:"email"`
	FirstName        *string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName         *string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
	TwoFactorEnabled bool    `json:"two_factor_authentication_enabled" yaml:"two_factor_authentication_enabled"`
}

// AccountRole is a role grantable to an account member.
type AccountRole struct {
	ID          string   `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions Document `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// AccountMember is a user's membership seen from the account side.
type AccountMember struct {
	ID     string        `json:"id"     yaml:"id"`
	User   MemberUser    `json:"user"   yaml:"user"`
	Status Enum          `json:"status" yaml:"status"`
	Roles  []AccountRole `json:"roles"  yaml:"roles"`
}

// AccountMemberInvite invites a user into an account.
type AccountMemberInvite struct {
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	Status Enum     `json:"status,omitempty"`
}

// AccountMemberUpdateRequest changes a member's roles.
type AccountMemberUpdateRequest struct {
	Roles []AccountRole `json:"roles"`
}

// Subscriptions

// Subscription states.
var (
	SubscriptionStateTrial    = EnumOf("Trial")
	SubscriptionStateActive   = EnumOf("Paid")
	SubscriptionStateExpired  = EnumOf("Expired")
	SubscriptionStateCanceled = EnumOf("Cancelled")
)

// Subscription frequencies.
var (
	SubscriptionFrequencyWeekly    = EnumOf("weekly")
	SubscriptionFrequencyMonthly   = EnumOf("monthly")
	SubscriptionFrequencyQuarterly = EnumOf("quarterly")
	SubscriptionFrequencyYearly    = EnumOf("yearly")
)

// RatePlan identifies what a subscription is billed against.
type RatePlan struct {
	ID                string `json:"id"                           yaml:"id"`
	PublicName        string `json:"public_name,omitempty"        yaml:"public_name,omitempty"`
	Currency          string `json:"currency,omitempty"           yaml:"currency,omitempty"`
	Scope             string `json:"scope,omitempty"              yaml:"scope,omitempty"`
	ExternallyManaged bool   `json:"externally_managed,omitempty" yaml:"externally_managed,omitempty"`
}

// SubscriptionComponent is one metered component of a subscription.
type SubscriptionComponent struct {
	Name    string  `json:"name"              yaml:"name"`
	Value   int     `json:"value"             yaml:"value"`
	Default int     `json:"default,omitempty" yaml:"default,omitempty"`
	Price   float64 `json:"price,omitempty"   yaml:"price,omitempty"`
}

// Subscription represents an account subscription.
type Subscription struct {
	ID                 string                  `json:"id"                             yaml:"id"`
	State              Enum                    `json:"state"                          yaml:"state"`
	Price              float64                 `json:"price,omitempty"                yaml:"price,omitempty"`
	Currency           string                  `json:"currency,omitempty"             yaml:"currency,omitempty"`
	Frequency          Enum                    `json:"frequency,omitempty"            yaml:"frequency,omitempty"`
	RatePlan           *RatePlan               `json:"rate_plan,omitempty"            yaml:"rate_plan,omitempty"`
	ComponentValues    []SubscriptionComponent `json:"component_values,omitempty"     yaml:"component_values,omitempty"`
	CurrentPeriodStart *time.Time              `json:"current_period_start,omitempty" yaml:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time              `json:"current_period_end,omitempty"   yaml:"current_period_end,omitempty"`
}

// SubscriptionRequest creates or replaces a subscription.
type SubscriptionRequest struct {
	RatePlan  RatePlan `json:"rate_plan"`
	Frequency Enum     `json:"frequency,omitempty"`
}

// Zone settings

// Common zone setting values.
var (
	SettingValueOn  = EnumOf("on")
	SettingValueOff = EnumOf("off")
)

// ZoneSetting is one zone configuration entry. Value is an open enum: the
// server may introduce values the client does not know.
type ZoneSetting struct {
	ID         string     `json:"id"                    yaml:"id"`
	Value      Enum       `json:"value"                 yaml:"value"`
	Editable   bool       `json:"editable"              yaml:"editable"`
	ModifiedOn *time.Time `json:"modified_on,omitempty" yaml:"modified_on,omitempty"`
}

// ZoneSettingUpdateRequest changes one setting's value.
type ZoneSettingUpdateRequest struct {
	Value Enum `json:"value"`
}

// User and accounts

// User represents the authenticated user.
type User struct {
	ID               string     `json:"id"                                yaml:"id"`
	Email            string     `json:"email"                             yaml:"email"`
	Username         string     `json:"username,omitempty"                yaml:"username,omitempty"`
	FirstName        *string    `json:"first_name,omitempty"              yaml:"first_name,omitempty"`
	LastName         *string    `json:"last_name,omitempty"               yaml:"last_name,omitempty"`
	Telephone        *string    `json:"telephone,omitempty"               yaml:"telephone,omitempty"`
	Country          *string    `json:"country,omitempty"                 yaml:"country,omitempty"`
	Zipcode          *string    `json:"zipcode,omitempty"                 yaml:"zipcode,omitempty"`
	TwoFactorEnabled bool       `json:"two_factor_authentication_enabled" yaml:"two_factor_authentication_enabled"`
	CreatedOn        *time.Time `json:"created_on,omitempty"              yaml:"created_on,omitempty"`
	ModifiedOn       *time.Time `json:"modified_on,omitempty"             yaml:"modified_on,omitempty"`
}

// UserUpdateRequest edits the authenticated user's profile. Unset fields are
// left unchanged server-side and omitted from the body.
type UserUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	Country   *string `json:"country,omitempty"`
	Zipcode   *string `json:"zipcode,omitempty"`
}

// Account types.
var (
	AccountTypeStandard   = EnumOf("standard")
	AccountTypeEnterprise = EnumOf("enterprise")
)

// AccountSettings holds account-level toggles.
type AccountSettings struct {
	EnforceTwoFactor bool `json:"enforce_twofactor" yaml:"enforce_twofactor"`
}

// Account represents an account the caller can access.
type Account struct {
	ID        string           `json:"id"                   yaml:"id"`
	Name      string           `json:"name"                 yaml:"name"`
	Type      Enum             `json:"type,omitempty"       yaml:"type,omitempty"`
	Settings  *AccountSettings `json:"settings,omitempty"   yaml:"settings,omitempty"`
	CreatedOn *time.Time       `json:"created_on,omitempty" yaml:"created_on,omitempty"`
}

// AccountListFilter narrows an account list request.
type AccountListFilter struct {
	Name      *string
	Direction *string
}

// Query builds the filter's query parameters.
func (f *AccountListFilter) Query() *Params {
	params := NewParams()
	if f == nil {
		return params
	}

	return params.
		String("name", f.Name).
		String("direction", f.Direction)
}
