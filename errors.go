package skipset

import "github.com/pkg/errors"

// Errors returned by SkipListSet. Operations wrap them with the name of the
// failing operation, so compare with errors.Is.
var (
	// ErrNullArgument is returned when a nil element, collection or
	// destination is passed to an operation.
	ErrNullArgument = errors.New("null argument")
	// ErrInvalidType is returned when an untyped argument is not of the
	// set's element type.
	ErrInvalidType = errors.New("invalid element type")
	// ErrEmptyCollection is returned by First, Last and Iterator.Next when
	// there is no element to return.
	ErrEmptyCollection = errors.New("empty collection")
	// ErrInvalidIteratorState is returned by Iterator.Remove when the cursor
	// is not positioned on a live element.
	ErrInvalidIteratorState = errors.New("iterator not positioned on an element")
	// ErrUnsupportedOperation is returned by the range view methods.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
