package store

import "errors"

// Sentinel errors returned by store operations. Lower layers wrap these
// with operation context; callers match them with errors.Is.
var (
	// ErrEmptyPath is returned when an operation is given an empty file path.
	ErrEmptyPath = errors.New("file path is empty")

	// ErrEmptyTag is returned when an operation is given an empty tag name.
	ErrEmptyTag = errors.New("tag name is empty")

	// ErrEmptyFilename is returned when Open is given no store filename.
	ErrEmptyFilename = errors.New("store filename is empty")

	// ErrAlreadyOpen is returned when Open is called while another handle
	// is open in this process.
	ErrAlreadyOpen = errors.New("store already open")

	// ErrStoreUnavailable is returned when the store file or its directory
	// cannot be opened or created.
	ErrStoreUnavailable = errors.New("store unavailable")
)
