// Package errors defines the sentinel errors shared across the library and
// a small utility for aggregating multiple errors into one.
package errors

import "errors"

var (
	// ErrWrongType indicates a value was not of the type an operation requires.
	ErrWrongType = errors.New("wrong type")

	// ErrIllegalArgument indicates a caller supplied an argument the
	// operation cannot accept.
	ErrIllegalArgument = errors.New("illegal argument")
)

// Collection accumulates errors from multiple operations so they can be
// reported together as a single error. The zero value is ready to use.
// Collection is not safe for concurrent use.
type Collection struct {
	errs []error
}

// Add appends the given errors to the collection. Nil errors are ignored.
func (c *Collection) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			c.errs = append(c.errs, err)
		}
	}
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errs)
}

// HasError returns true if the collection holds at least one error.
func (c *Collection) HasError() bool {
	return len(c.errs) > 0
}

// GetError returns the collected errors as one error: nil when empty, the
// error itself when there is exactly one, and a joined error otherwise.
func (c *Collection) GetError() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	default:
		return errors.Join(c.errs...)
	}
}
