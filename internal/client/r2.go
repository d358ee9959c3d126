package client

import (
	"context"
	"net/http"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// jurisdictionHeader names the header that scopes a bucket operation to a
// jurisdiction. It is omitted entirely for the default jurisdiction; sending
// an empty value would address a different namespace.
const jurisdictionHeader = "cf-r2-jurisdiction"

// R2Client implements cfapi.R2Client.
type R2Client struct {
	httpClient *internalhttp.Client
}

func r2Headers(jurisdiction cfapi.Enum) map[string]string {
	if jurisdiction.IsZero() {
		return nil
	}

	return map[string]string{jurisdictionHeader: jurisdiction.Value()}
}

func bucketPath(accountID, bucket string, extra ...string) string {
	segments := append([]string{"accounts", accountID, "r2", "buckets", bucket}, extra...)

	return cfapi.BuildPath(segments...)
}

func (c *R2Client) requireBucket(accountID, bucket string) error {
	if err := requireParam("accountID", accountID); err != nil {
		return err
	}

	return requireParam("bucket", bucket)
}

// CreateBucket creates a bucket, optionally in a non-default jurisdiction.
func (c *R2Client) CreateBucket(ctx context.Context, accountID string, request *cfapi.R2BucketCreateRequest, jurisdiction cfapi.Enum) (*cfapi.R2Bucket, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPost,
		Path:    cfapi.BuildPath("accounts", accountID, "r2", "buckets"),
		Body:    request,
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return nil, err
	}

	bucket, err := cfapi.DecodeResult[cfapi.R2Bucket](resp.Body)
	if err != nil {
		return nil, err
	}

	return &bucket, nil
}

// ListBuckets returns one cursor page of buckets. An empty cursor requests
// the first page.
func (c *R2Client) ListBuckets(ctx context.Context, accountID string, filter *cfapi.R2BucketListFilter, cursor string) ([]cfapi.R2Bucket, *cfapi.CursorInfo, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, nil, err
	}

	perPage := 0
	if filter != nil {
		perPage = filter.PerPage
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    cfapi.BuildPath("accounts", accountID, "r2", "buckets"),
		Query:   filter.Query().Cursor(cursor, perPage).Encode(),
		Headers: r2Headers(filterJurisdiction(filter)),
	})
	if err != nil {
		return nil, nil, err
	}

	list, info, err := decodeCursorList[cfapi.R2BucketList](resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return list.Buckets, info, nil
}

func filterJurisdiction(filter *cfapi.R2BucketListFilter) cfapi.Enum {
	if filter == nil {
		return cfapi.Enum{}
	}

	return filter.Jurisdiction
}

// decodeCursorList decodes a single-object result and normalizes the cursor
// metadata.
func decodeCursorList[T any](body []byte) (T, *cfapi.CursorInfo, error) {
	var zero T

	result, info, err := cfapi.DecodeResultInfo[T](body)
	if err != nil {
		return zero, nil, err
	}

	return result, info.CursorView(), nil
}

// IterateBuckets lazily walks all buckets matching the filter.
func (c *R2Client) IterateBuckets(ctx context.Context, accountID string, filter *cfapi.R2BucketListFilter) *cfapi.Iterator[cfapi.R2Bucket] {
	return cfapi.NewCursorIterator(ctx, func(ctx context.Context, cursor string) ([]cfapi.R2Bucket, *cfapi.CursorInfo, error) {
		return c.ListBuckets(ctx, accountID, filter, cursor)
	})
}

// GetBucket returns a single bucket.
func (c *R2Client) GetBucket(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) (*cfapi.R2Bucket, error) {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    bucketPath(accountID, bucket),
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return nil, err
	}

	result, err := cfapi.DecodeResult[cfapi.R2Bucket](resp.Body)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteBucket removes an empty bucket.
func (c *R2Client) DeleteBucket(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) error {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodDelete,
		Path:    bucketPath(accountID, bucket),
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}

// GetCORS returns the bucket's CORS configuration.
func (c *R2Client) GetCORS(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) (*cfapi.R2CORSConfig, error) {
	return getBucketConfig[cfapi.R2CORSConfig](ctx, c, accountID, bucket, "cors", jurisdiction)
}

// PutCORS replaces the bucket's CORS configuration.
func (c *R2Client) PutCORS(ctx context.Context, accountID, bucket string, config *cfapi.R2CORSConfig, jurisdiction cfapi.Enum) error {
	return putBucketConfig(ctx, c, accountID, bucket, "cors", config, jurisdiction)
}

// DeleteCORS removes the bucket's CORS configuration.
func (c *R2Client) DeleteCORS(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) error {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodDelete,
		Path:    bucketPath(accountID, bucket, "cors"),
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}

// GetLifecycle returns the bucket's lifecycle configuration.
func (c *R2Client) GetLifecycle(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) (*cfapi.R2LifecycleConfig, error) {
	return getBucketConfig[cfapi.R2LifecycleConfig](ctx, c, accountID, bucket, "lifecycle", jurisdiction)
}

// PutLifecycle replaces the bucket's lifecycle configuration.
func (c *R2Client) PutLifecycle(ctx context.Context, accountID, bucket string, config *cfapi.R2LifecycleConfig, jurisdiction cfapi.Enum) error {
	return putBucketConfig(ctx, c, accountID, bucket, "lifecycle", config, jurisdiction)
}

// GetLock returns the bucket's object-lock configuration.
func (c *R2Client) GetLock(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) (*cfapi.R2LockConfig, error) {
	return getBucketConfig[cfapi.R2LockConfig](ctx, c, accountID, bucket, "lock", jurisdiction)
}

// PutLock replaces the bucket's object-lock configuration.
func (c *R2Client) PutLock(ctx context.Context, accountID, bucket string, config *cfapi.R2LockConfig, jurisdiction cfapi.Enum) error {
	return putBucketConfig(ctx, c, accountID, bucket, "lock", config, jurisdiction)
}

// GetSippy returns the bucket's incremental-migration state.
func (c *R2Client) GetSippy(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) (*cfapi.R2Sippy, error) {
	return getBucketConfig[cfapi.R2Sippy](ctx, c, accountID, bucket, "sippy", jurisdiction)
}

// PutSippy enables incremental migration on the bucket.
func (c *R2Client) PutSippy(ctx context.Context, accountID, bucket string, request *cfapi.R2SippyPutRequest, jurisdiction cfapi.Enum) (*cfapi.R2Sippy, error) {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPut,
		Path:    bucketPath(accountID, bucket, "sippy"),
		Body:    request,
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return nil, err
	}

	sippy, err := cfapi.DecodeResult[cfapi.R2Sippy](resp.Body)
	if err != nil {
		return nil, err
	}

	return &sippy, nil
}

// DeleteSippy disables incremental migration on the bucket.
func (c *R2Client) DeleteSippy(ctx context.Context, accountID, bucket string, jurisdiction cfapi.Enum) error {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodDelete,
		Path:    bucketPath(accountID, bucket, "sippy"),
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}

func getBucketConfig[T any](ctx context.Context, c *R2Client, accountID, bucket, section string, jurisdiction cfapi.Enum) (*T, error) {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    bucketPath(accountID, bucket, section),
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return nil, err
	}

	config, err := cfapi.DecodeResult[T](resp.Body)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func putBucketConfig(ctx context.Context, c *R2Client, accountID, bucket, section string, config interface{}, jurisdiction cfapi.Enum) error {
	if err := c.requireBucket(accountID, bucket); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPut,
		Path:    bucketPath(accountID, bucket, section),
		Body:    config,
		Headers: r2Headers(jurisdiction),
	})
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}
