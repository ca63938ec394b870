package libevents

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMaxListenersExceeded = errors.New("possible event emitter leak detected")
	ErrInvalidConfig        = errors.New("invalid emitter config")
)

// MaxListenersExceededError is logged when a key's listener count goes over the
// configured limit. It does not prevent the registration.
type MaxListenersExceededError struct {
	err   error
	key   any
	count int
	limit int
}

func (e MaxListenersExceededError) Error() string {
	return fmt.Sprintf("%s: %d %v listeners added, limit is %d",
		e.err, e.count, e.key, e.limit)
}

func (e MaxListenersExceededError) Unwrap() error { return e.err }

func (e MaxListenersExceededError) Key() any { return e.key }

func (e MaxListenersExceededError) Count() int { return e.count }

func NewMaxListenersExceededError(key any, count, limit int) *MaxListenersExceededError {
	return &MaxListenersExceededError{
		err:   ErrMaxListenersExceeded,
		key:   key,
		count: count,
		limit: limit,
	}
}
