// SPDX-License-Identifier: MIT
// Package: lvrand/config
//
// load.go - .env + environment loading, usage table.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the given dotenv files (".env" when none are given) into the
// environment, without overriding variables that are already set, and then
// parses the configuration. A missing dotenv file is not an error.
func Load(files ...string) (Configuration, error) {
	var conf Configuration

	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return conf, fmt.Errorf("config: failed to load dotenv: %w", err)
	}
	if err := envconfig.Process(Prefix, &conf); err != nil {
		return conf, fmt.Errorf("config: failed parsing environment: %w", err)
	}
	if conf.Samples < 1 {
		return conf, fmt.Errorf("config: %s_SAMPLES=%d must be >= 1", Prefix, conf.Samples)
	}

	return conf, nil
}

// Usage writes a table of all variables with their defaults.
func Usage(w io.Writer) error {
	tabs := tabwriter.NewWriter(w, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(Prefix, &Configuration{}, tabs, usageHelpFormat); err != nil {
		return err
	}
	return tabs.Flush()
}

// see https://github.com/kelseyhightower/envconfig/blob/v1.4.0/usage.go#L31
const usageHelpFormat = `lvrand is configured with the following environment variables:
KEY	DESCRIPTION	DEFAULT
{{range .}}{{usage_key .}}	{{usage_description .}}	{{usage_default .}}
{{end}}`
