package store

import (
	"context"
	"fmt"
)

// OpenOptions selects and configures a backend.
type OpenOptions struct {
	Backend     string
	PostgresDSN string
	Firestore   FirestoreOptions
	PebbleDir   string
}

// Open returns the Store for the configured backend.
func Open(ctx context.Context, opts OpenOptions) (Store, error) {
	switch opts.Backend {
	case BackendPostgres, "":
		s, err := NewPostgresStore(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendFirestore:
		return NewFirestoreStore(NewFirestoreProvider(opts.Firestore)), nil
	case BackendPebble:
		s, err := NewPebbleStore(opts.PebbleDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
