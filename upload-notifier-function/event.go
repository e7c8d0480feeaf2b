package main

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// changeEvent is the S3 notification batch. Records stay raw so that a bad
// record only fails once the records before it have been dispatched.
type changeEvent struct {
	Records []json.RawMessage `json:"Records"`
}

// changeRecord is the subset of an S3 event record the dispatcher reads.
// events.S3EventRecord is not used because it parses eventTime into a
// time.Time, and the timestamp has to reach the queue byte for byte.
type changeRecord struct {
	EventTime string `json:"eventTime"`
	S3        struct {
		Bucket struct {
			Name *string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key *string `json:"key"`
		} `json:"object"`
	} `json:"s3"`
}

func decodeEvent(payload json.RawMessage) (changeEvent, error) {
	var event changeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return changeEvent{}, &MalformedEventError{Index: batchIndex, Field: "Records", Err: errors.Wrap(err, "failed to unmarshal event")}
	}
	if len(event.Records) == 0 {
		return changeEvent{}, &MalformedEventError{Index: batchIndex, Field: "Records"}
	}
	return event, nil
}

// decodeRecord returns bucket name, object key and event time of record i.
// The key is returned as sent by S3, without URL decoding.
func decodeRecord(i int, raw json.RawMessage) (string, string, string, error) {
	var record changeRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		field := "record"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field = typeErr.Field
		}
		return "", "", "", &MalformedEventError{Index: i, Field: field, Err: err}
	}

	bucket := record.S3.Bucket.Name
	if bucket == nil || *bucket == "" {
		return "", "", "", &MalformedEventError{Index: i, Field: "s3.bucket.name"}
	}
	key := record.S3.Object.Key
	if key == nil || *key == "" {
		return "", "", "", &MalformedEventError{Index: i, Field: "s3.object.key"}
	}

	return *bucket, *key, record.EventTime, nil
}
