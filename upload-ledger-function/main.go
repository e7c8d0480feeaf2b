package main

import (
	"context"
	"flag"

	"github.com/Dandi-Pangestu/upload-notifier/internal/logging"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/jamiealquiza/envy"
	"github.com/rs/zerolog/log"
)

func main() {
	conf := newSettings(flag.CommandLine)
	envy.Parse("LEDGER")
	flag.Parse()

	if err := logging.Init("upload-ledger", *conf.logLevel, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to init logger")
	}
	if err := conf.validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	sdkConfig, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load default config")
	}

	ledger := NewLedger(dynamodb.NewFromConfig(sdkConfig), *conf.tableName)

	lambda.Start(ledger.Handle)
}
