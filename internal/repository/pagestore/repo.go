// Package pagestore persists caller-supplied record maps by page id.
// Payloads are stored as the raw wrapper-shaped JSON they arrived in and
// re-parsed on read, so the stored form stays transport-identical.
package pagestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/docview/internal/db"
	"github.com/kailas-cloud/docview/internal/domain"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
)

// store is the consumer interface for page persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo stores and hydrates record maps.
type Repo struct {
	store     store
	keyPrefix string
	ttl       time.Duration // 0 = no expiry
}

// New creates a page repository.
func New(s store, keyPrefix string, ttl time.Duration) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, ttl: ttl}
}

// Put validates and stores a record-map payload for a page.
// The payload must parse as the wrapper ingestion shape.
func (r *Repo) Put(ctx context.Context, pageID string, payload []byte) error {
	if pageID == "" {
		return fmt.Errorf("page id is required")
	}
	if _, err := recordmap.Parse(payload); err != nil {
		return err
	}

	key := r.key(pageID)
	if r.ttl > 0 {
		if err := r.store.SetWithTTL(ctx, key, payload, r.ttl); err != nil {
			return fmt.Errorf("set page %s: %w", pageID, err)
		}
		return nil
	}
	if err := r.store.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("set page %s: %w", pageID, err)
	}
	return nil
}

// Get hydrates the record map stored for a page.
func (r *Repo) Get(ctx context.Context, pageID string) (recordmap.RecordMap, error) {
	data, err := r.store.Get(ctx, r.key(pageID))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return recordmap.RecordMap{}, domain.ErrPageNotFound
		}
		return recordmap.RecordMap{}, fmt.Errorf("get page %s: %w", pageID, err)
	}
	return recordmap.Parse(data)
}

// Delete removes a stored page.
func (r *Repo) Delete(ctx context.Context, pageID string) error {
	if err := r.store.Del(ctx, r.key(pageID)); err != nil {
		return fmt.Errorf("del page %s: %w", pageID, err)
	}
	return nil
}

// Exists checks whether a page is stored.
func (r *Repo) Exists(ctx context.Context, pageID string) (bool, error) {
	ok, err := r.store.Exists(ctx, r.key(pageID))
	if err != nil {
		return false, fmt.Errorf("exists page %s: %w", pageID, err)
	}
	return ok, nil
}

func (r *Repo) key(pageID string) string {
	return r.keyPrefix + "page:" + pageID
}
