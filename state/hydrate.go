package state

import (
	"context"
	"errors"
	"fmt"
)

// Hydrate rebuilds a State from storage. A missing key leaves its slice at
// the default. A key that cannot be read or decoded also falls back to the
// default and is reported in the returned error; the State is usable either
// way.
func Hydrate(ctx context.Context, storage Storage) (State, error) {
	s := Default()
	var errs []error
	for _, slice := range AllSlices {
		value, ok, err := storage.Get(ctx, string(slice))
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", slice, err))
			continue
		}
		if !ok || value == "" {
			continue
		}
		if err := decodeSlice(&s, slice, value); err != nil {
			errs = append(errs, fmt.Errorf("decode %s: %w", slice, err))
		}
	}
	if len(errs) > 0 {
		return s, fmt.Errorf("state: hydrate: %w", errors.Join(errs...))
	}
	return s, nil
}
