package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	fs := flag.NewFlagSet("upload-ledger", flag.ContinueOnError)
	conf := newSettings(fs)

	require.NoError(t, fs.Parse(nil))
	assert.EqualError(t, conf.validate(), "table-name is required")
	assert.Equal(t, "info", *conf.logLevel)

	require.NoError(t, fs.Parse([]string{"-table-name", testTable, "-log-level", "warn"}))
	assert.NoError(t, conf.validate())
	assert.Equal(t, testTable, *conf.tableName)
	assert.Equal(t, "warn", *conf.logLevel)
}
