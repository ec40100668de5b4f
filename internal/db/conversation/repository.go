package conversation

import "context"

// Repository is an append-only log of exchanges.
type Repository interface {
	Init() error
	Close() error
	Append(ctx context.Context, entry NewEntry) (id int64, err error)
	LoadAll(ctx context.Context) ([]Entry, error)
}
