// Package commands implements the cfapi CLI commands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Alos-no/cfapi/internal/constants"
	"github.com/Alos-no/cfapi/pkg/cfapi"
	"github.com/Alos-no/cfapi/pkg/cfclient"
)

// newClient is swapped out by tests.
var newClient = func(config *cfapi.Config) (cfapi.Client, error) {
	return cfclient.New(context.Background(), config)
}

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	jsonIndent = "  "
	yamlIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrZoneRequired      = errors.New("zone ID is required (use --zone)")
	ErrAccountRequired   = errors.New("account ID is required (use --account)")
	ErrTokenRequired     = errors.New("API token is required (set cfapi config set token, CFAPI_TOKEN, or --token)")
	ErrValueRequired     = errors.New("a value is required")
	ErrNothingToPrompt   = errors.New("standard input is not a terminal; pass the value as an argument")
	ErrUnknownConfigKey  = cfapi.ErrUnknownConfigKey
	ErrInvalidOutputType = cfapi.ErrInvalidOutputFormat
)

// zerologAdapter bridges zerolog onto the library's Logger interface.
type zerologAdapter struct {
	log zerolog.Logger
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}

// newCLILogger builds the structured logger used by --verbose runs. Output
// goes to stderr so piped table/JSON output stays clean.
func newCLILogger(verbose bool) cfapi.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	return &zerologAdapter{log: logger}
}

// createClient builds an API client from the effective CLI configuration
// (flags, environment, config file, in that order of precedence).
func createClient() (cfapi.Client, error) {
	config := &cfapi.Config{
		Endpoint:  viper.GetString("endpoint"),
		APIToken:  viper.GetString("token"),
		APIKey:    viper.GetString("api_key"),
		APIEmail:  viper.GetString("api_email"),
		Debug:     viper.GetBool("verbose"),
		Logger:    newCLILogger(viper.GetBool("verbose")),
		RetryMax:  constants.DefaultRetryMax,
		UserAgent: constants.DefaultUserAgent + "-cli",
	}

	if config.APIToken == "" && config.APIKey == "" {
		return nil, ErrTokenRequired
	}

	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// outputJSON renders any value as indented JSON on stdout.
func outputJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// outputYAML renders any value as YAML on stdout.
func outputYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}

// renderOutput dispatches to the configured output format, falling back to
// the provided table renderer.
func renderOutput(value interface{}, table func() error) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return outputJSON(value)
	case constants.FormatYAML:
		return outputYAML(value)
	case constants.FormatTable, "":
		return table()
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputType, viper.GetString("output"))
	}
}

// formatTime renders an optional timestamp for table cells.
func formatTime(value *time.Time) string {
	if value == nil {
		return NotAvailable
	}

	return value.UTC().Format(time.RFC3339)
}

// formatEnum renders an open enum for table cells.
func formatEnum(value cfapi.Enum) string {
	if value.IsZero() {
		return NotAvailable
	}

	return value.Value()
}
