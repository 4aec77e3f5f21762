package store

import (
	"context"
	"errors"
	"fmt"
)

// Keys lists every record a kitchen owns.
var Keys = []string{KeyRecipes, KeyTheme, KeyFont, KeyColorTheme}

// Export reads every record of a kitchen. Absent records are left out.
func Export(ctx context.Context, kv KV) (map[string]string, error) {
	out := make(map[string]string, len(Keys))
	for _, key := range Keys {
		v, err := kv.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// Import writes the known records of a snapshot, such as a dump of the
// browser's localStorage, into a kitchen. Other keys are skipped. It returns
// the number of records written.
func Import(ctx context.Context, kv KV, snapshot map[string]string) (int, error) {
	written := 0
	for _, key := range Keys {
		v, ok := snapshot[key]
		if !ok {
			continue
		}
		if err := kv.Set(ctx, key, v); err != nil {
			return written, fmt.Errorf("failed to import %s: %w", key, err)
		}
		written++
	}
	return written, nil
}
