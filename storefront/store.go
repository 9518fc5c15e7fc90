package storefront

import (
	"context"

	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/state"
)

// OpenStore hydrates a store from storage and mirrors every later change
// back to it. Undecodable stored slices are logged and start from defaults.
func OpenStore(ctx context.Context, storage state.Storage, log *logger.Logger, opts ...state.PersisterOption) *state.Store {
	initial, err := state.Hydrate(ctx, storage)
	if err != nil {
		log.Warn("state partially restored", logger.Fields(logger.FieldError, err.Error()))
	}
	p := state.NewPersister(storage, log, opts...)
	return state.NewStore(initial, state.WithLogger(log), state.WithListener(p.Listener()))
}
