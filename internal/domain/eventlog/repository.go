package eventlog

import "context"

type Repository interface {
	Append(ctx context.Context, e *Event) error
	// List returns events newest first.
	List(ctx context.Context, limit, offset int) ([]Event, error)
}
