package database

import "errors"

var (
	// ErrNotInitialized is returned by the gateway before Initialize succeeds.
	ErrNotInitialized = errors.New("database gateway is not initialized")

	// ErrPersistence matches any *PersistenceError via errors.Is.
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceError reports a failed store operation. The message is the
// store's own message so callers can show it unchanged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Wrap converts a store error into a *PersistenceError. Nil, ErrNotInitialized
// and errors that are already persistence errors pass through unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotInitialized) {
		return err
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
