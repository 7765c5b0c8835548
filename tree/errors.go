package tree

import "errors"

var (
	// ErrNullReference is returned when a nil node is passed where a node
	// is required.
	ErrNullReference = errors.New("nil node reference")

	// ErrInvalidArgument is returned for structurally invalid requests,
	// such as rotating two nodes that are not parent and child.
	ErrInvalidArgument = errors.New("invalid argument")
)
