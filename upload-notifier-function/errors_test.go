package main

import (
	"testing"

	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMalformedEventErrorMessage(t *testing.T) {
	assert.EqualError(t,
		&MalformedEventError{Index: 3, Field: "s3.object.key"},
		"malformed event: record 3: s3.object.key: missing or empty",
	)
	assert.EqualError(t,
		&MalformedEventError{Index: batchIndex, Field: "Records"},
		"malformed event: batch: Records: missing or empty",
	)
	assert.EqualError(t,
		&MalformedEventError{Index: 0, Field: "record", Err: errors.New("bad json")},
		"malformed event: record 0: record: bad json",
	)
}

func TestSinkUnavailableError(t *testing.T) {
	cause := &smithy.GenericAPIError{Code: "AuthorizationError", Message: "not authorized"}
	err := &SinkUnavailableError{Sink: "sns", Destination: "arn:aws:sns:us-east-1:1:t", Index: 2, Err: errors.Wrap(cause, "publish")}

	assert.EqualError(t, err, "sns sink unavailable: record 2 to arn:aws:sns:us-east-1:1:t: publish: api error AuthorizationError: not authorized")
	assert.Equal(t, "AuthorizationError", err.Code())
	assert.ErrorIs(t, err, ErrSinkUnavailable)
	assert.NotErrorIs(t, err, ErrMalformedEvent)

	var apiErr smithy.APIError
	assert.True(t, errors.As(err, &apiErr))
}
