package repository

import (
	"context"
)

const (
	KeyRegistry    = "deployments"
	KeyMetrics     = "metrics"
	KeyQuotaLog    = "sms-log"
	KeyRotationLog = "deploy-log"
)

// DocumentStore persists whole JSON documents by key. Get returns
// apperrors.ErrDocumentNotFound when the key has never been written.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
