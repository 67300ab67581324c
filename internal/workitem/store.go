package workitem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/keelhq/opsq/internal/queue"
	pebblestore "github.com/keelhq/opsq/internal/store/pebble"
)

// ErrNotFound is returned when a requested item does not exist.
var ErrNotFound = errors.New("workitem: not found")

// Store persists raw work items in Pebble.
type Store struct {
	db *pebblestore.DB
}

// New creates a Store over an open database.
func New(db *pebblestore.DB) *Store { return &Store{db: db} }

// Put upserts one raw work item.
func (s *Store) Put(ctx context.Context, it queue.RawItem) error {
	b := s.db.NewBatch()
	defer b.Close()
	if err := s.putInto(b, it); err != nil {
		return err
	}
	return s.db.CommitBatch(ctx, b)
}

// PutBatch upserts a batch of raw work items atomically.
func (s *Store) PutBatch(ctx context.Context, items []queue.RawItem) error {
	if len(items) == 0 {
		return nil
	}
	b := s.db.NewBatch()
	defer b.Close()
	for _, it := range items {
		if err := s.putInto(b, it); err != nil {
			return err
		}
	}
	return s.db.CommitBatch(ctx, b)
}

func (s *Store) putInto(b *pebble.Batch, it queue.RawItem) error {
	val, err := json.Marshal(it)
	if err != nil {
		return fmt.Errorf("encode item %s/%s: %w", it.ItemType, it.ItemID, err)
	}
	return b.Set(ItemKey(it.OrganizationID, it.ItemType, it.ItemID), val, nil)
}

// Get loads one raw work item.
func (s *Store) Get(_ context.Context, org string, t queue.ItemType, itemID string) (queue.RawItem, error) {
	val, err := s.db.Get(ItemKey(org, t, itemID))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return queue.RawItem{}, ErrNotFound
		}
		return queue.RawItem{}, err
	}
	var it queue.RawItem
	if err := json.Unmarshal(val, &it); err != nil {
		return queue.RawItem{}, fmt.Errorf("decode item %s/%s: %w", t, itemID, err)
	}
	return it, nil
}

// Delete removes one raw work item. Deleting an absent item is a no-op.
func (s *Store) Delete(_ context.Context, org string, t queue.ItemType, itemID string) error {
	return s.db.Delete(ItemKey(org, t, itemID))
}

// ListOrg returns every item of one organization in key order.
func (s *Store) ListOrg(ctx context.Context, org string) ([]queue.RawItem, error) {
	return s.scan(ctx, OrgPrefix(org))
}

// ListAll returns every item across organizations in key order.
func (s *Store) ListAll(ctx context.Context) ([]queue.RawItem, error) {
	return s.scan(ctx, AllPrefix())
}

func (s *Store) scan(_ context.Context, prefix []byte) ([]queue.RawItem, error) {
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upperBound(prefix)})
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", prefix, err)
	}
	defer it.Close()

	var items []queue.RawItem
	for ok := it.First(); ok; ok = it.Next() {
		var item queue.RawItem
		if err := json.Unmarshal(it.Value(), &item); err != nil {
			return nil, fmt.Errorf("decode key %q: %w", it.Key(), err)
		}
		items = append(items, item)
	}
	return items, nil
}
