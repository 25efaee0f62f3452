package services

import (
	"context"
	"time"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// IssueToken checks client credentials and returns a signed access token
	// with its expiry time.
	IssueToken(ctx context.Context, clientID, clientSecret string) (string, time.Time, error)
}
