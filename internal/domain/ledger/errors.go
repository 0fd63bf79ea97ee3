package ledger

import "errors"

// Cross-cutting error kinds shared by every ledger operation. Entity-specific
// conditions (not-found, already-checked-out, insufficient stock) live in the
// entity packages.
var (
	// ErrInvalidInput rejects an operation before any write: empty required
	// field, non-positive amount, wrong material type for the operation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned once concurrent-transaction retries are
	// exhausted. The caller should retry the whole operation.
	ErrConflict = errors.New("transaction conflict, retry the operation")
)
