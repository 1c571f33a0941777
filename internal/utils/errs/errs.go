package errs

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	ErrHistoryNotFound    = errors.New("history record not found")
	ErrInvalidURL         = errors.New("invalid url (allowed: http, https)")
	ErrFormatRequired     = errors.New("format selection is required unless audio only")
	ErrInvalidState       = errors.New("operation not allowed in current task state")
	ErrAlreadyActive      = errors.New("queue entry already has an active job")
	ErrCancelled          = errors.New("download cancelled by user")
	ErrShuttingDown       = errors.New("service is shutting down")
)
