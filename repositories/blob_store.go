package repositories

import (
	"context"
	"errors"
	"fmt"

	"emoji-shop/config"
	"emoji-shop/models"
)

// ErrStoreUnavailable wraps any driver-level failure so callers can tell a
// store outage apart from an absent key.
var ErrStoreUnavailable = errors.New("blob store unavailable")

// BlobStore is the catalog's key-value store boundary. Get returns (nil, nil)
// for an absent key. List returns the set of known keys with read-your-writes
// consistency. There are no transactional guarantees across multiple Puts.
type BlobStore interface {
	Get(ctx context.Context, key string) (*models.Product, error)
	List(ctx context.Context) ([]string, error)
	Put(ctx context.Context, key string, product *models.Product) error
	Close()
}

// Connect builds the configured store driver.
func Connect(cfg *config.Config) (BlobStore, error) {
	switch cfg.StoreDriver {
	case "redis":
		return NewRedisStore(cfg)
	case "postgres":
		return NewPostgresStore(cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
