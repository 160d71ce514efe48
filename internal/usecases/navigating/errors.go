package navigating

import "errors"

var (
	ErrNotResolved  = errors.New("navigating: current path is not fully resolved")
	ErrAtLeaf       = errors.New("navigating: geo is the deepest level")
	ErrUnknownChild = errors.New("navigating: id is not a child of the current record")
	ErrWrongLevel   = errors.New("navigating: record does not belong to the next level")
	ErrNotNavigable = errors.New("navigating: crumb is not navigable")
	ErrNoHistory    = errors.New("navigating: no previous entry")
	ErrAtRoot       = errors.New("navigating: already at the manager root")
)
