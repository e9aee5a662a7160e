package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const productsPath = "/v1/users/~current/skills/~current/inSkillProducts/"

// EntitlementStatus is the product status meaning the user holds an
// active grant.
const EntitlementStatus = "ENTITLED"

// Product is one purchasable product from the entitlement service.
type Product struct {
	ProductID string `json:"productId"`
	Entitled  string `json:"entitled"`
}

type productList struct {
	InSkillProducts []Product `json:"inSkillProducts"`
}

// EntitlementFetcher queries the user's purchasable products. An
// empty result means "no products available", whether the service is
// unreachable or nothing is configured.
type EntitlementFetcher interface {
	Fetch(ctx context.Context, apiEndpoint, accessToken, locale string) []Product
}

// EntitlementClient implements EntitlementFetcher against the
// platform product API. All failures fold to an empty result: the
// response to the user must never block on this call being retried.
type EntitlementClient struct {
	client   *http.Client
	notifier Notifier
	logger   *zap.Logger
}

// NewEntitlementClient creates a new entitlement client
func NewEntitlementClient(timeout time.Duration, notifier Notifier, logger *zap.Logger) *EntitlementClient {
	return &EntitlementClient{
		client:   &http.Client{Timeout: timeout},
		notifier: notifier,
		logger:   logger,
	}
}

// Fetch returns the user's product list, or nil when the service is
// unreachable, returns a non-success status, or has no products.
func (c *EntitlementClient) Fetch(ctx context.Context, apiEndpoint, accessToken, locale string) []Product {
	url := apiEndpoint + productsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("failed to build entitlement request",
			zap.String("url", url),
			zap.Error(err),
		)
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept-Language", locale)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("entitlement service unreachable", zap.Error(err))
		c.notifier.Alert("entitlement service unreachable: " + err.Error())
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("entitlement service returned non-success status",
			zap.Int("status", resp.StatusCode),
		)
		return nil
	}

	var list productList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.logger.Warn("failed to decode entitlement response", zap.Error(err))
		return nil
	}

	return list.InSkillProducts
}
