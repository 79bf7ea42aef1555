package service

import (
	"fmt"
	"runtime"
)

// ProcessingError describes something that went wrong while handling one
// inbound message. Fatal errors are those that will fail again on
// redelivery: an unsupported profile, a missing fixity, a merge conflict.
// Non-fatal errors are transient (PID service unreachable, S3 delivery
// failed) and are worth a requeue.
type ProcessingError struct {
	CorrelationID string `json:"correlation_id"`
	Identifier    string `json:"identifier"`
	IsFatal       bool   `json:"is_fatal"`
	Message       string `json:"message"`
	Source        string `json:"source"`
}

// NewProcessingError returns a new ProcessingError. Param identifier is
// typically the bag path or entity id being processed when the error
// occurred.
func NewProcessingError(correlationID, identifier, message string, isFatal bool) *ProcessingError {
	_, filename, line, ok := runtime.Caller(1)
	source := "unknown:0"
	if ok {
		source = fmt.Sprintf("%s:%d", filename, line)
	}
	return &ProcessingError{
		CorrelationID: correlationID,
		Identifier:    identifier,
		IsFatal:       isFatal,
		Message:       message,
		Source:        source,
	}
}

func (e *ProcessingError) Error() string {
	severity := "non-fatal"
	if e.IsFatal {
		severity = "fatal"
	}
	return fmt.Sprintf("(correlation %s) (message: %s) (severity: %s) "+
		"(identifier: %s) (source: %s)", e.CorrelationID, e.Message,
		severity, e.Identifier, e.Source)
}
