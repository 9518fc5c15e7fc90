package state

import (
	"context"
	"slices"
	"time"

	"github.com/kbukum/storefront/logger"
)

// Persister mirrors owned state slices into a Storage. Install it with
// Store.Subscribe(p.Listener()).
type Persister struct {
	storage Storage
	slices  []Slice
	timeout time.Duration
	onError func(Slice, error)
	log     *logger.Logger
}

// PersisterOption configures a Persister.
type PersisterOption func(*Persister)

// WithSlices restricts the persister to the given slices.
func WithSlices(s ...Slice) PersisterOption {
	return func(p *Persister) { p.slices = slices.Clone(s) }
}

// WithWriteTimeout bounds each storage write.
func WithWriteTimeout(d time.Duration) PersisterOption {
	return func(p *Persister) { p.timeout = d }
}

// WithErrorHook is called for every failed write after it is logged.
func WithErrorHook(fn func(Slice, error)) PersisterOption {
	return func(p *Persister) { p.onError = fn }
}

// NewPersister creates a Persister owning every slice.
func NewPersister(storage Storage, log *logger.Logger, opts ...PersisterOption) *Persister {
	if log == nil {
		log = logger.Nop()
	}
	p := &Persister{
		storage: storage,
		slices:  slices.Clone(AllSlices),
		timeout: 2 * time.Second,
		log:     log.WithComponent("state.persister"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Listener returns the store subscription that performs the writes.
func (p *Persister) Listener() Listener {
	return func(prev, next State, action Action) {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		p.Sync(ctx, prev, next, action)
	}
}

// Sync writes every owned slice that differs between prev and next. Empty
// slices are removed from storage. Failures are logged and passed to the
// error hook; they never affect the store.
func (p *Persister) Sync(ctx context.Context, prev, next State, action Action) {
	for _, slice := range p.slices {
		if !sliceChanged(prev, next, slice) {
			continue
		}
		if err := p.write(ctx, next, slice); err != nil {
			p.log.Warn("persist slice failed", logger.Fields(
				logger.FieldSlice, string(slice),
				logger.FieldAction, string(action.Kind),
				logger.FieldError, err.Error(),
			))
			if p.onError != nil {
				p.onError(slice, err)
			}
		}
	}
}

// Flush writes every owned slice of s unconditionally.
func (p *Persister) Flush(ctx context.Context, s State) error {
	for _, slice := range p.slices {
		if err := p.write(ctx, s, slice); err != nil {
			return err
		}
	}
	return nil
}

func (p *Persister) write(ctx context.Context, s State, slice Slice) error {
	value, empty, err := encodeSlice(s, slice)
	if err != nil {
		return err
	}
	if empty {
		return p.storage.Remove(ctx, string(slice))
	}
	return p.storage.Set(ctx, string(slice), value)
}
