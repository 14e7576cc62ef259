package domain

import "errors"

var (
	// ErrEmptyReferenceSet means one of the reference tables has no
	// rows, so random foreign-key selection is impossible.
	ErrEmptyReferenceSet = errors.New("empty reference set")

	// ErrInvalidBatch means the batch shape is malformed (line items
	// submitted without any orders to own them).
	ErrInvalidBatch = errors.New("invalid batch")

	// ErrCommitFailed means a storage failure during a batch commit;
	// the batch was rolled back in full and is never retried.
	ErrCommitFailed = errors.New("commit failed")
)
