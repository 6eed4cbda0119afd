package bubble

import "errors"

var (
	// ErrInvalidPath is returned for paths that are not absolute,
	// end with a slash, or contain empty segments.
	ErrInvalidPath = errors.New("bubble: invalid path")
	// ErrNotFound is returned when a path does not resolve to a bubble.
	ErrNotFound = errors.New("bubble: not found")
	// ErrNoParent is returned when creating a bubble whose parent is missing.
	ErrNoParent = errors.New("bubble: parent does not exist")
	// ErrExists is returned when creating a bubble at an occupied path.
	ErrExists = errors.New("bubble: already exists")
	// ErrDegenerate is returned for bubbles with non-positive width or height.
	ErrDegenerate = errors.New("bubble: width and height must be positive")
	// ErrRootImmutable is returned when an operation would remove or move the root.
	ErrRootImmutable = errors.New("bubble: root cannot be modified")
)
