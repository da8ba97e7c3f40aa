package health

import (
	"context"
	"fmt"
)

// EndpointValidator checks an endpoint URL.
type EndpointValidator func(raw string) error

// EndpointChecker verifies the configured form endpoint is usable. It does
// not contact the endpoint: a probe request would count as a submission.
type EndpointChecker struct {
	endpoint func() string
	validate EndpointValidator
}

// NewEndpointChecker creates a checker for the endpoint returned by endpoint.
func NewEndpointChecker(endpoint func() string, validate EndpointValidator) *EndpointChecker {
	return &EndpointChecker{endpoint: endpoint, validate: validate}
}

// Name returns the checker name.
func (c *EndpointChecker) Name() string {
	return "form_endpoint"
}

// Check validates the current endpoint.
func (c *EndpointChecker) Check(ctx context.Context) error {
	if c.endpoint == nil || c.validate == nil {
		return fmt.Errorf("form endpoint not configured")
	}
	return c.validate(c.endpoint())
}

// CatalogChecker verifies the project catalog is well formed.
type CatalogChecker struct {
	check func() error
}

// NewCatalogChecker creates a catalog checker.
func NewCatalogChecker(check func() error) *CatalogChecker {
	return &CatalogChecker{check: check}
}

// Name returns the checker name.
func (c *CatalogChecker) Name() string {
	return "catalog"
}

// Check runs the catalog validation.
func (c *CatalogChecker) Check(ctx context.Context) error {
	if c.check == nil {
		return fmt.Errorf("catalog not configured")
	}
	return c.check()
}
