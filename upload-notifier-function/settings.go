package main

import (
	"flag"

	"github.com/pkg/errors"
)

type settings struct {
	queueURL *string
	topicArn *string
	logLevel *string
}

// newSettings registers the function's flags on fs. Values come from
// NOTIFIER_* environment variables once envy.Parse has run.
func newSettings(fs *flag.FlagSet) settings {
	return settings{
		queueURL: fs.String("queue-url", "", "URL of the SQS queue receiving upload metadata [MANDATORY]"),
		topicArn: fs.String("topic-arn", "", "ARN of the SNS topic receiving upload notifications [MANDATORY]"),
		logLevel: fs.String("log-level", "info", "Log level (debug, info, warn, error)"),
	}
}

func (s settings) validate() error {
	if *s.queueURL == "" {
		return errors.New("queue-url is required")
	}
	if *s.topicArn == "" {
		return errors.New("topic-arn is required")
	}
	return nil
}
