/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver-parser/pkg/logging"
	"github.com/NVIDIA/semver-parser/pkg/serializer"
)

const (
	name           = "svpctl"
	versionDefault = "dev"

	// apiVersion identifies the schema of serialized result resources.
	apiVersion = "svp.nvidia.com/v1"
)

var (
	// overridden during build with ldflags
	// e.g., -X "github.com/NVIDIA/semver-parser/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
)

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "Normalize, bump, and validate loosely formatted version strings",
		Description: fmt.Sprintf(`%s - version string normalization CLI

Version: %s
Commit:  %s
Built:   %s

Parses loosely formatted version strings (date-based releases, month names,
zero-padded components, assorted suffix markers) into canonical
[prefix]major.minor.patch[-suffix] form, preserving zero padding.`,
			name, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			parseCmd(),
			bumpCmd(),
			checkCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initLogger(os.Getenv("LOG_LEVEL"))

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog before any command executes.
func initLogger(logLevel string) {
	if logLevel == "" {
		logLevel = "info"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}

// parseOutputFormat validates the format flag on the given command.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}
