package workout

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/myrjola/trackmate/internal/errors"
	"github.com/myrjola/trackmate/internal/kv"
)

// Logical keys of the persisted documents.
const (
	KeyProfile        = "trackmateProfile"
	KeyOneRM          = "trackmateOneRM"
	KeyWorkoutLog     = "trackmateWorkoutState"
	KeyOneRMEquipment = "trackmateOneRMEquip"
)

// document is one JSON record in the key-value store, always read and written whole.
//
// Reads never fail: a missing, unreadable or malformed record yields the default value. A failed write is logged and
// the serialized value is kept as the authoritative copy, so later reads in this process observe it and the next
// write retries persisting it. A value that cannot be encoded is neither persisted nor kept, and the error is
// returned.
type document[T any] struct {
	store      kv.Store
	key        string
	logger     *slog.Logger
	newDefault func() T
	// normalize repairs a decoded value, may be nil.
	normalize func(*T)

	mu sync.Mutex
	// pending holds a value that could not be persisted, pendingDelete a delete that could not be persisted.
	pending       []byte
	pendingDelete bool
}

func newDocument[T any](store kv.Store, key string, logger *slog.Logger, newDefault func() T) *document[T] {
	return &document[T]{
		store:         store,
		key:           key,
		logger:        logger.With(slog.String("key", key)),
		newDefault:    newDefault,
		normalize:     nil,
		mu:            sync.Mutex{},
		pending:       nil,
		pendingDelete: false,
	}
}

// Get loads the current value.
func (d *document[T]) Get(ctx context.Context) T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load(ctx)
}

// Update applies updateFn to the current value and persists it when updateFn reports a change.
// An error from updateFn or from encoding the result aborts the update without persisting anything.
func (d *document[T]) Update(ctx context.Context, updateFn func(v *T) (bool, error)) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	v := d.load(ctx)
	updated, err := updateFn(&v)
	if err != nil {
		return d.load(ctx), err
	}
	if updated {
		if err = d.save(ctx, v); err != nil {
			return d.load(ctx), err
		}
	}
	return v, nil
}

// Set replaces the value wholesale.
func (d *document[T]) Set(ctx context.Context, v T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(ctx, v)
}

// Delete removes the record so that later reads yield the default.
func (d *document[T]) Delete(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
	if err := d.store.Delete(ctx, d.key); err != nil {
		d.pendingDelete = true
		d.logger.LogAttrs(ctx, slog.LevelWarn, "could not delete record, keeping in-process copy",
			errors.SlogError(err))
		return
	}
	d.pendingDelete = false
}

func (d *document[T]) load(ctx context.Context) T {
	if d.pendingDelete {
		return d.newDefault()
	}
	data := d.pending
	if data == nil {
		var (
			ok  bool
			err error
		)
		data, ok, err = d.store.Get(ctx, d.key)
		if err != nil {
			d.logger.LogAttrs(ctx, slog.LevelWarn, "could not read record, using defaults", errors.SlogError(err))
			return d.newDefault()
		}
		if !ok || len(data) == 0 {
			return d.newDefault()
		}
	}
	v := d.newDefault()
	if err := json.Unmarshal(data, &v); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelWarn, "malformed record, using defaults", errors.SlogError(err))
		return d.newDefault()
	}
	if d.normalize != nil {
		d.normalize(&v)
	}
	return v
}

// save encodes and persists v. Only encoding errors are returned, store failures keep the in-process copy.
func (d *document[T]) save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode record", slog.String("key", d.key))
	}
	d.pendingDelete = false
	if err = d.store.Set(ctx, d.key, data); err != nil {
		d.pending = data
		d.logger.LogAttrs(ctx, slog.LevelWarn, "could not persist record, keeping in-process copy",
			errors.SlogError(err))
		return nil
	}
	d.pending = nil
	return nil
}
