// Package upload holds the message contract shared by the upload notifier and
// the functions consuming its queue.
package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// NotificationSubject is the subject of every upload notification.
	NotificationSubject = "File Upload Notification"

	notificationTemplate = "New file uploaded to S3 bucket '%s' with key '%s'"
)

// MetadataRecord is the body sent to the upload queue for every new object.
type MetadataRecord struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	Timestamp string `json:"timestamp"`
}

// Encode returns the JSON body of the record. Keys are not HTML-escaped, so
// '&', '<' and '>' reach the queue as sent by S3.
func (r MetadataRecord) Encode() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return "", errors.Wrap(err, "failed to marshal metadata record")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a queue message body. Bucket and key must be present.
func Decode(body string) (MetadataRecord, error) {
	var r MetadataRecord
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return MetadataRecord{}, errors.Wrap(err, "failed to unmarshal metadata record")
	}
	if r.Bucket == "" {
		return MetadataRecord{}, errors.New("metadata record has no bucket")
	}
	if r.Key == "" {
		return MetadataRecord{}, errors.New("metadata record has no key")
	}
	return r, nil
}

// Notification formats the human readable message published for a new object.
func Notification(bucket, key string) string {
	return fmt.Sprintf(notificationTemplate, bucket, key)
}
