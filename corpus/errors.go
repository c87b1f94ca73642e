package corpus

import "errors"

var (
	ErrNotFound    = errors.New("corpus: vector not found")
	ErrStoreClosed = errors.New("corpus: store is closed")
)
