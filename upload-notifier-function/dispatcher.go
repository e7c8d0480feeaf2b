package main

import (
	"context"
	"encoding/json"

	"github.com/Dandi-Pangestu/upload-notifier/internal/logging"
	"github.com/Dandi-Pangestu/upload-notifier/internal/upload"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const completionBody = "Processing complete"

// QueueSender is the part of *sqs.Client the dispatcher uses.
type QueueSender interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// TopicPublisher is the part of *sns.Client the dispatcher uses.
type TopicPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// CompletionResult is returned to the Lambda runtime once every record is dispatched.
type CompletionResult struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Dispatcher forwards S3 object-created records to the upload queue and topic.
// It is built once per container and reused across invocations.
type Dispatcher struct {
	queue    QueueSender
	queueURL string
	topic    TopicPublisher
	topicArn string
}

func NewDispatcher(queue QueueSender, queueURL string, topic TopicPublisher, topicArn string) *Dispatcher {
	return &Dispatcher{
		queue:    queue,
		queueURL: queueURL,
		topic:    topic,
		topicArn: topicArn,
	}
}

// Handle processes the batch in order. The first malformed record or sink
// fault stops the batch and is returned; nothing is retried.
func (d *Dispatcher) Handle(ctx context.Context, payload json.RawMessage) (CompletionResult, error) {
	logger := logging.FromContext(ctx)

	event, err := decodeEvent(payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to decode s3 event")
		return CompletionResult{}, err
	}

	for i, raw := range event.Records {
		bucket, key, eventTime, err := decodeRecord(i, raw)
		if err != nil {
			logger.Error().Err(err).Int("record", i).Msg("failed to read s3 event record")
			return CompletionResult{}, err
		}
		logger.Info().Str("bucket", bucket).Str("key", key).Int("record", i).Msg("success receive s3 event trigger")

		if err := d.sendMetadata(ctx, i, upload.MetadataRecord{Bucket: bucket, Key: key, Timestamp: eventTime}); err != nil {
			return CompletionResult{}, err
		}
		if err := d.publishNotification(ctx, i, bucket, key); err != nil {
			return CompletionResult{}, err
		}
	}

	logger.Info().Int("records", len(event.Records)).Msg("processing complete")

	body, err := json.Marshal(completionBody)
	if err != nil {
		return CompletionResult{}, err
	}
	return CompletionResult{StatusCode: 200, Body: string(body)}, nil
}

// sendMetadata sends the metadata record of record i to the queue
func (d *Dispatcher) sendMetadata(ctx context.Context, i int, record upload.MetadataRecord) error {
	logger := logging.FromContext(ctx)

	body, err := record.Encode()
	if err != nil {
		logger.Error().Err(err).Int("record", i).Msg("failed to marshal payload")
		return err
	}

	resp, err := d.queue.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		sinkErr := &SinkUnavailableError{Sink: "sqs", Destination: d.queueURL, Index: i, Err: err}
		logger.Error().Err(err).Str("code", sinkErr.Code()).Int("record", i).Msg("failed to send message to SQS")
		return sinkErr
	}

	logger.Info().Str("message_id", aws.ToString(resp.MessageId)).Msg("message sent to SQS")
	return nil
}

// publishNotification publishes the upload notification of record i to the topic
func (d *Dispatcher) publishNotification(ctx context.Context, i int, bucket, key string) error {
	logger := logging.FromContext(ctx)

	resp, err := d.topic.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(d.topicArn),
		Message:  aws.String(upload.Notification(bucket, key)),
		Subject:  aws.String(upload.NotificationSubject),
	})
	if err != nil {
		sinkErr := &SinkUnavailableError{Sink: "sns", Destination: d.topicArn, Index: i, Err: err}
		logger.Error().Err(err).Str("code", sinkErr.Code()).Int("record", i).Msg("failed to publish message to SNS")
		return sinkErr
	}

	logger.Info().Str("message_id", aws.ToString(resp.MessageId)).Msg("message sent to SNS")
	return nil
}
