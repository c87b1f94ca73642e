package corpus

import (
	"context"
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/fxamacker/cbor/v2"
)

// PebbleStore is a Pebble-backed Store[T], adapted from the teacher's
// store.PebbleStore[T]: same prefix-keying and CBOR payload encoding,
// generalized over T. Framed as test/dev tooling here — an embedded
// corpus of wire captures, opened by cmd/mqttwiredump's
// -corpus=pebble:<path> flag — never as a persistent session store.
type PebbleStore[T any] struct {
	db     *pebble.DB
	mu     sync.RWMutex
	closed bool
	prefix []byte
}

// PebbleStoreConfig configures a PebbleStore.
type PebbleStoreConfig struct {
	Path   string
	Prefix string
	Opts   *pebble.Options
}

// NewPebbleStore opens (or creates) a Pebble-backed Store[T] at config.Path.
func NewPebbleStore[T any](config PebbleStoreConfig) (*PebbleStore[T], error) {
	opts := config.Opts
	if opts == nil {
		opts = &pebble.Options{ErrorIfExists: false}
	}

	db, err := pebble.Open(config.Path, opts)
	if err != nil {
		return nil, err
	}

	prefix := []byte(config.Prefix)
	if len(prefix) == 0 {
		prefix = []byte("vector:")
	}

	return &PebbleStore[T]{db: db, prefix: prefix}, nil
}

func (p *PebbleStore[T]) makeKey(key string) []byte {
	full := make([]byte, len(p.prefix)+len(key))
	copy(full, p.prefix)
	copy(full[len(p.prefix):], key)
	return full
}

func (p *PebbleStore[T]) Save(ctx context.Context, key string, value T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrStoreClosed
	}
	p.mu.RUnlock()

	data, err := cbor.Marshal(value)
	if err != nil {
		return err
	}
	return p.db.Set(p.makeKey(key), data, pebble.Sync)
}

func (p *PebbleStore[T]) Load(ctx context.Context, key string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return zero, ErrStoreClosed
	}
	p.mu.RUnlock()

	data, closer, err := p.db.Get(p.makeKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	defer closer.Close()

	var value T
	if err := cbor.Unmarshal(data, &value); err != nil {
		return zero, err
	}
	return value, nil
}

func (p *PebbleStore[T]) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrStoreClosed
	}
	p.mu.RUnlock()
	return p.db.Delete(p.makeKey(key), pebble.Sync)
}

func (p *PebbleStore[T]) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return false, ErrStoreClosed
	}
	p.mu.RUnlock()

	_, closer, err := p.db.Get(p.makeKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	closer.Close()
	return true, nil
}

func (p *PebbleStore[T]) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, ErrStoreClosed
	}
	p.mu.RUnlock()

	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: p.prefix,
		UpperBound: append(append([]byte{}, p.prefix...), 0xff),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var keys []string
	for iter.First(); iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()[len(p.prefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (p *PebbleStore[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrStoreClosed
	}
	p.closed = true
	return p.db.Close()
}

func (p *PebbleStore[T]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return 0, ErrStoreClosed
	}
	p.mu.RUnlock()

	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: p.prefix,
		UpperBound: append(append([]byte{}, p.prefix...), 0xff),
	})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	var count int64
	for iter.First(); iter.Valid(); iter.Next() {
		count++
	}
	if err := iter.Error(); err != nil {
		return 0, err
	}
	return count, nil
}

// PebbleVectorStore is a PebbleStore specialized to Vector.
type PebbleVectorStore = PebbleStore[Vector]

// NewPebbleVectorStore opens a PebbleVectorStore at config.Path.
func NewPebbleVectorStore(config PebbleStoreConfig) (*PebbleVectorStore, error) {
	return NewPebbleStore[Vector](config)
}
