package main

import (
	"flag"

	"github.com/pkg/errors"
)

type settings struct {
	tableName *string
	logLevel  *string
}

// newSettings registers the function's flags on fs. Values come from
// LEDGER_* environment variables once envy.Parse has run.
func newSettings(fs *flag.FlagSet) settings {
	return settings{
		tableName: fs.String("table-name", "", "DynamoDB table recording uploads [MANDATORY]"),
		logLevel:  fs.String("log-level", "info", "Log level (debug, info, warn, error)"),
	}
}

func (s settings) validate() error {
	if *s.tableName == "" {
		return errors.New("table-name is required")
	}
	return nil
}
