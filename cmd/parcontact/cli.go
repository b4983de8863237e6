package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/parcontact"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor parcontact.ContactExtractor
	Sleep     func(ctx context.Context, d time.Duration) error
	Now       func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   kong.ConfigFlag `help:"YAML file with flag defaults" placeholder:"FILE"`
	LogLevel string          `default:"warn" enum:"debug,info,warn,error" env:"PARCONTACT_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	LogFile  string          `type:"path" env:"PARCONTACT_LOG_FILE" help:"Write logs to a rotating file instead of stderr"`

	Timeout     time.Duration `default:"15s" env:"PARCONTACT_TIMEOUT" help:"Timeout for listing pages"`
	SiteTimeout time.Duration `default:"10s" env:"PARCONTACT_SITE_TIMEOUT" help:"Timeout for institution websites"`
	Retries     int           `default:"0" env:"PARCONTACT_RETRIES" help:"Retries for listing pages that fail to load"`
	RPS         float64       `name:"rps" default:"1" env:"PARCONTACT_RPS" help:"Requests per second per host (0 disables the limit)"`

	Run     RunCmd     `cmd:"" help:"Extract contacts for every listing URL of an input sheet"`
	Extract ExtractCmd `cmd:"" help:"Extract contacts from one listing URL"`
	Columns ColumnsCmd `cmd:"" help:"Show the columns of an input sheet and the ones holding listing URLs"`
	Report  ReportCmd  `cmd:"" help:"Summarize a results file"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Input           string        `arg:"" type:"existingfile" help:"Input sheet (.csv or SpreadsheetML .xml)"`
	Column          string        `short:"c" default:"O" env:"PARCONTACT_COLUMN" help:"URL column letter or header name"`
	StartRow        int           `default:"2" help:"First data row (row 1 holds the headers)"`
	Output          string        `short:"o" type:"path" help:"Output file (.csv, .xml or .db); defaults to contacts_extraits_<timestamp>.csv"`
	Domain          string        `default:"parcoursup.fr" env:"PARCONTACT_DOMAIN" help:"Text a URL must contain to be processed"`
	Delay           time.Duration `default:"1s" env:"PARCONTACT_DELAY" help:"Pause after each processed row"`
	Pause           time.Duration `default:"10s" env:"PARCONTACT_PAUSE" help:"Extra pause every --pause-every rows"`
	PauseEvery      int           `default:"50" env:"PARCONTACT_PAUSE_EVERY" help:"Rows between extra pauses"`
	CheckpointEvery int           `default:"100" env:"PARCONTACT_CHECKPOINT_EVERY" help:"Rows between saves of the output"`
	Strict          bool          `env:"PARCONTACT_STRICT" help:"Report rows whose listing page failed to load as errors"`
	Limit           int           `help:"Process at most N rows (0 processes all)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Listing URL"`
}

// ColumnsCmd is the "columns" subcommand.
type ColumnsCmd struct {
	Input   string `arg:"" type:"existingfile" help:"Input sheet (.csv or SpreadsheetML .xml)"`
	Samples int    `default:"5" help:"Sample rows to show"`
	Scan    int    `default:"8" help:"Rows searched for listing URLs"`
	Domain  string `default:"parcoursup.fr" env:"PARCONTACT_DOMAIN" help:"Text identifying listing URLs"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Results string `arg:"" optional:"" type:"path" help:"Results file (.csv, .xml or .db); defaults to the newest contacts_extraits_* file"`
	Dir     string `default:"." type:"path" help:"Directory searched for the newest results file"`
	RunID   string `name:"run" help:"Run ID in a .db results file; defaults to the latest run"`
	Samples int    `default:"10" help:"Result rows to show"`
}
