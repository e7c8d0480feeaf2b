package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Dandi-Pangestu/upload-notifier/internal/logging"
	"github.com/Dandi-Pangestu/upload-notifier/internal/upload"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// ItemWriter is the part of *dynamodb.Client the ledger uses.
type ItemWriter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Ledger records every upload announced on the metadata queue in a DynamoDB table.
type Ledger struct {
	db        ItemWriter
	tableName string
}

func NewLedger(db ItemWriter, tableName string) *Ledger {
	return &Ledger{db: db, tableName: tableName}
}

// Handle writes one item per SQS message. A message that cannot be decoded or
// written is reported back as a batch item failure; the rest of the batch
// still goes through.
func (l *Ledger) Handle(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	logger := logging.FromContext(ctx)
	resp := events.SQSEventResponse{BatchItemFailures: []events.SQSBatchItemFailure{}}

	for _, record := range event.Records {
		logger.Debug().Str("message_id", record.MessageId).Str("body", record.Body).Msg("received message from SQS")

		if err := l.recordUpload(ctx, record); err != nil {
			logger.Error().Err(err).Str("message_id", record.MessageId).Msg("failed to record upload")
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}

	logger.Info().
		Int("messages", len(event.Records)).
		Int("failures", len(resp.BatchItemFailures)).
		Msg("batch recorded")

	return resp, nil
}

func (l *Ledger) recordUpload(ctx context.Context, message events.SQSMessage) error {
	body, err := upload.Decode(message.Body)
	if err != nil {
		return err
	}
	return l.createDynamoDBItem(ctx, map[string]types.AttributeValue{
		"bucket":    &types.AttributeValueMemberS{Value: body.Bucket},
		"key":       &types.AttributeValueMemberS{Value: body.Key},
		"timestamp": &types.AttributeValueMemberS{Value: body.Timestamp},
		"name":      &types.AttributeValueMemberS{Value: extractFilename(body.Key)},
		"messageId": &types.AttributeValueMemberS{Value: message.MessageId},
	})
}

// createDynamoDBItem creates a new item in DynamoDB
func (l *Ledger) createDynamoDBItem(ctx context.Context, item map[string]types.AttributeValue) error {
	_, err := l.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(l.tableName),
		Item:      item,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return errors.Wrapf(err, "failed to put item in DynamoDB table %s (%s)", l.tableName, apiErr.ErrorCode())
		}
		return errors.Wrapf(err, "failed to put item in DynamoDB table %s", l.tableName)
	}

	logger := logging.FromContext(ctx)
	logger.Debug().Str("table", l.tableName).Msg("successfully put item in DynamoDB table")

	return nil
}

// extractFilename extracts the filename without extension (photos/aaa.jpg -> aaa)
func extractFilename(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
