// Package logging configures the zerolog global logger for the Lambda functions.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init points the global logger at w (stderr when nil) and sets the level.
func Init(function, level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	if w == nil {
		w = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).With().Timestamp().Str("function", function).Logger()

	return nil
}

// FromContext returns the global logger tagged with the Lambda request id, if any.
func FromContext(ctx context.Context) zerolog.Logger {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return log.Logger
	}
	return log.With().Str("request_id", lc.AwsRequestID).Logger()
}
