// Package state is the storefront client's session and cart container.
//
// A Store holds one immutable State snapshot. Dispatch runs the pure Reduce
// function over the current snapshot and an Action, swaps in the result and
// notifies subscribers with the previous and next snapshots. Persistence is
// one such subscriber: a Persister writes the slices that changed to a
// Storage, and Hydrate rebuilds a State from the same Storage at start-up.
//
//	st, err := state.Hydrate(ctx, storage)
//	store := state.NewStore(st, state.WithLogger(log))
//	store.Subscribe(state.NewPersister(storage, log).Listener())
//	store.Dispatch(state.AddItem(item))
package state
