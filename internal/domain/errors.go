package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrEmptyText           = errors.New("task text cannot be empty")
	ErrCancelled           = errors.New("operation cancelled")
	ErrUnsupportedVersion  = errors.New("unsupported data version")
	ErrMalformedData       = errors.New("malformed task data")
	ErrUnknownPhase        = errors.New("unknown timer phase")
	ErrUnknownRoutine      = errors.New("unknown routine")
	ErrConfigExists        = errors.New("config file already exists")
	ErrStoreLocked         = errors.New("stored tasks use an unsupported version; refusing to overwrite")
	ErrAmbiguousTaskRef    = errors.New("task reference matches more than one task")
	ErrMissingDependency   = errors.New("missing required dependency")
	ErrHistoryNotAvailable = errors.New("phase history is not available")
)
