package syntax

import "errors"

// ErrInvalidArgument reports a programmer error in the caller: a zero root,
// an index out of range, or an element that does not belong to the tree an
// operation was created for.
var ErrInvalidArgument = errors.New("invalid argument")
