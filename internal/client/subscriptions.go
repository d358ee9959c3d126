package client

import (
	"context"

	internalhttp "github.com/Alos-no/cfapi/internal/http"
	"github.com/Alos-no/cfapi/pkg/cfapi"
)

// SubscriptionsClient implements cfapi.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient *internalhttp.Client
}

// List returns all subscriptions on an account.
func (c *SubscriptionsClient) List(ctx context.Context, accountID string) ([]cfapi.Subscription, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, cfapi.BuildPath("accounts", accountID, "subscriptions"), "")
	if err != nil {
		return nil, err
	}

	subscriptions, _, err := cfapi.DecodeList[cfapi.Subscription](resp.Body)

	return subscriptions, err
}

// Create adds a subscription to an account.
func (c *SubscriptionsClient) Create(ctx context.Context, accountID string, request *cfapi.SubscriptionRequest) (*cfapi.Subscription, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, cfapi.BuildPath("accounts", accountID, "subscriptions"), request)
	if err != nil {
		return nil, err
	}

	subscription, err := cfapi.DecodeResult[cfapi.Subscription](resp.Body)
	if err != nil {
		return nil, err
	}

	return &subscription, nil
}

// Update replaces a subscription.
func (c *SubscriptionsClient) Update(ctx context.Context, accountID, subscriptionID string, request *cfapi.SubscriptionRequest) (*cfapi.Subscription, error) {
	if err := requireParam("accountID", accountID); err != nil {
		return nil, err
	}

	if err := requireParam("subscriptionID", subscriptionID); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, cfapi.BuildPath("accounts", accountID, "subscriptions", subscriptionID), request)
	if err != nil {
		return nil, err
	}

	subscription, err := cfapi.DecodeResult[cfapi.Subscription](resp.Body)
	if err != nil {
		return nil, err
	}

	return &subscription, nil
}

// Delete cancels a subscription.
func (c *SubscriptionsClient) Delete(ctx context.Context, accountID, subscriptionID string) error {
	if err := requireParam("accountID", accountID); err != nil {
		return err
	}

	if err := requireParam("subscriptionID", subscriptionID); err != nil {
		return err
	}

	resp, err := c.httpClient.Delete(ctx, cfapi.BuildPath("accounts", accountID, "subscriptions", subscriptionID))
	if err != nil {
		return err
	}

	_, err = cfapi.DecodeResult[cfapi.Document](resp.Body)

	return err
}
