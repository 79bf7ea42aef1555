package service

import (
	"encoding/json"
	"os"
	"strings"
	"time"
)

// WorkResult records one worker's attempts to build an AIP for a single
// inbound message. Results are saved to Redis keyed by correlation id, so
// an operator can see what happened across redeliveries. Messages are
// processed strictly one at a time, so no locking is needed here.
type WorkResult struct {
	// Attempt is the number of the attempt to do this work.
	Attempt int `json:"attempt"`

	// Operation is the name of the operation, typically the consumer topic.
	Operation string `json:"operation"`

	// Host is the name of the network host on which the worker is running.
	Host string `json:"host"`

	// Pid is the pid of the worker doing this work.
	Pid int `json:"pid"`

	// StartedAt describes when the attempt to build the package started.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt describes when the attempt completed. The attempt may
	// have completed without succeeding; check Succeeded().
	FinishedAt time.Time `json:"finished_at"`

	// Errors describes what went wrong during the attempt.
	Errors []*ProcessingError `json:"errors"`
}

func NewWorkResult(operation string) *WorkResult {
	hostname, _ := os.Hostname()
	return &WorkResult{
		Operation: operation,
		Host:      hostname,
		Pid:       os.Getpid(),
		Errors:    make([]*ProcessingError, 0),
	}
}

// Start marks the beginning of a new attempt, clearing the errors of the
// previous one.
func (result *WorkResult) Start() {
	result.Attempt++
	result.StartedAt = time.Now().UTC()
	result.FinishedAt = time.Time{}
	result.Errors = make([]*ProcessingError, 0)
}

func (result *WorkResult) Started() bool {
	return !result.StartedAt.IsZero()
}

func (result *WorkResult) Finish() {
	result.FinishedAt = time.Now().UTC()
}

func (result *WorkResult) Finished() bool {
	return !result.FinishedAt.IsZero()
}

func (result *WorkResult) RunTime() time.Duration {
	if result.StartedAt.IsZero() {
		return time.Duration(0)
	}
	endTime := result.FinishedAt
	if endTime.IsZero() {
		endTime = time.Now()
	}
	return endTime.Sub(result.StartedAt)
}

func (result *WorkResult) Succeeded() bool {
	return result.Finished() && len(result.Errors) == 0
}

func (result *WorkResult) AddError(err *ProcessingError) {
	result.Errors = append(result.Errors, err)
}

func (result *WorkResult) HasErrors() bool {
	return len(result.Errors) > 0
}

// FatalErrors returns a list of all of this result's fatal errors.
func (result *WorkResult) FatalErrors() (errors []*ProcessingError) {
	for _, err := range result.Errors {
		if err.IsFatal {
			errors = append(errors, err)
		}
	}
	return errors
}

func (result *WorkResult) HasFatalErrors() bool {
	return len(result.FatalErrors()) > 0
}

// FatalErrorMessage returns all fatal error messages as a single
// pipe-delimited string.
func (result *WorkResult) FatalErrorMessage() string {
	errors := result.FatalErrors()
	messages := make([]string, len(errors))
	for i, err := range errors {
		messages[i] = err.Message
	}
	return strings.Join(messages, " | ")
}

func WorkResultFromJSON(jsonData string) (*WorkResult, error) {
	result := &WorkResult{}
	err := json.Unmarshal([]byte(jsonData), result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (result *WorkResult) ToJSON() (string, error) {
	bytes, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
