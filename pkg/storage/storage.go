package storage

import (
	"context"

	"github.com/mosajjal/ebnotifier/pkg/models"
)

// StorageBackend defines the interface for the failure archive
type StorageBackend interface {
	// Store saves payloads whose webhook delivery failed
	Store(ctx context.Context, deliveries []*models.FailedDelivery) error

	// Close cleans up resources
	Close() error
}

// StorageConfig holds common storage configuration
type StorageConfig struct {
	Provider string // s3
	URL      string
}
