package hetzner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"serverbook/internal/retry"
)

// requestTimeout bounds a single API request; retries get a fresh budget.
const requestTimeout = 30 * time.Second

// Source provides the cloud-side data the importer consumes. The hcloud
// client satisfies it via CloudSource; tests substitute a fake.
type Source interface {
	AllServers(ctx context.Context) ([]*hcloud.Server, error)
	AllServerTypes(ctx context.Context) ([]*hcloud.ServerType, error)
}

// CloudSource reads from the Hetzner Cloud API.
type CloudSource struct {
	client *hcloud.Client
}

// NewCloudSource creates a CloudSource authenticated with the given API
// token. Additional client options override the defaults.
func NewCloudSource(token string, opts ...hcloud.ClientOption) *CloudSource {
	defaults := []hcloud.ClientOption{
		hcloud.WithApplication("serverbook", "0.1.0"),
		hcloud.WithToken(token),
	}
	return &CloudSource{
		client: hcloud.NewClient(append(defaults, opts...)...),
	}
}

func (s *CloudSource) AllServers(ctx context.Context) ([]*hcloud.Server, error) {
	var servers []*hcloud.Server
	err := retry.Do(ctx, retry.DefaultConfig(), isCloudRetryable, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		var apiErr error
		servers, apiErr = s.client.Server.All(reqCtx)
		return apiErr
	})
	if err != nil {
		return nil, fmt.Errorf("hetzner: list servers: %w", err)
	}
	return servers, nil
}

func (s *CloudSource) AllServerTypes(ctx context.Context) ([]*hcloud.ServerType, error) {
	var types []*hcloud.ServerType
	err := retry.Do(ctx, retry.DefaultConfig(), isCloudRetryable, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		var apiErr error
		types, apiErr = s.client.ServerType.All(reqCtx)
		return apiErr
	})
	if err != nil {
		return nil, fmt.Errorf("hetzner: list server types: %w", err)
	}
	return types, nil
}

// isCloudRetryable retries rate limits and write conflicts on top of the
// generic transient network errors.
func isCloudRetryable(err error) bool {
	var apiErr hcloud.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == hcloud.ErrorCodeRateLimitExceeded || apiErr.Code == hcloud.ErrorCodeConflict
	}
	return retry.IsRetryable(err)
}
