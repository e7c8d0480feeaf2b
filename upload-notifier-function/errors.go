package main

import (
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

var (
	// ErrMalformedEvent matches every MalformedEventError.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrSinkUnavailable matches every SinkUnavailableError.
	ErrSinkUnavailable = errors.New("sink unavailable")
)

// batchIndex marks a MalformedEventError that concerns the whole batch rather than one record.
const batchIndex = -1

// MalformedEventError reports a record (or the whole batch) missing a required
// field or carrying the wrong shape.
type MalformedEventError struct {
	Index int
	Field string
	Err   error
}

func (e *MalformedEventError) Error() string {
	where := "batch"
	if e.Index != batchIndex {
		where = fmt.Sprintf("record %d", e.Index)
	}
	if e.Err == nil {
		return fmt.Sprintf("malformed event: %s: %s: missing or empty", where, e.Field)
	}
	return fmt.Sprintf("malformed event: %s: %s: %s", where, e.Field, e.Err)
}

func (e *MalformedEventError) Is(target error) bool { return target == ErrMalformedEvent }

func (e *MalformedEventError) Unwrap() error { return e.Err }

// SinkUnavailableError reports a failed send to the queue or publish to the topic.
type SinkUnavailableError struct {
	Sink        string
	Destination string
	Index       int
	Err         error
}

func (e *SinkUnavailableError) Error() string {
	return fmt.Sprintf("%s sink unavailable: record %d to %s: %s", e.Sink, e.Index, e.Destination, e.Err)
}

func (e *SinkUnavailableError) Is(target error) bool { return target == ErrSinkUnavailable }

func (e *SinkUnavailableError) Unwrap() error { return e.Err }

// Code returns the AWS API error code behind the fault, or "" for transport errors.
func (e *SinkUnavailableError) Code() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
