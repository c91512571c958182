/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semver-parser/pkg/header"
	"github.com/NVIDIA/semver-parser/pkg/normalizer"
	"github.com/NVIDIA/semver-parser/pkg/serializer"
)

// ParseEntry is the per-version output of the parse command.
type ParseEntry struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ParseReport is the serialized output of the parse command.
type ParseReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Results []ParseEntry `json:"results" yaml:"results"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Normalize version strings into canonical form",
		ArgsUsage:             "[version...]",
		Description: `Parse loosely formatted version strings and render them in canonical
[prefix]major.minor.patch[-suffix] form. Handles:
  - mixed '-', '_', and '.' delimiters
  - date-based versions with English month names (2023-Nov-27)
  - zero-padded components, preserved through rendering
  - suffix markers (dev, patch, alpha, beta, rc) with optional numbers
  - discarded "release" and "v" literals

Each result reports whether the canonical form satisfies the composer
version grammar.

# Examples

Parse versions given as arguments:
  svpctl parse v1.2.3 2023-Nov-27-v1

Parse a comma-separated version list from a file:
  svpctl parse --input versions.txt --format json

Fail on unparseable entries (useful for CI/CD):
  svpctl parse --input versions.txt --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to a file containing a comma-separated list of version strings",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any version fails to parse",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}

			n := normalizer.New()

			entries := make([]ParseEntry, 0, len(versions))
			failed := 0
			for _, v := range versions {
				result, err := n.Normalize(v)
				if err != nil {
					failed++
					entries = append(entries, ParseEntry{
						Input: v,
						Error: err.Error(),
					})
					continue
				}
				entries = append(entries, ParseEntry{
					Input:      result.Input,
					Normalized: result.Normalized,
					Valid:      result.Valid,
				})
			}

			report := &ParseReport{Results: entries}
			report.Init(header.KindParseResult, apiVersion, version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize parse results: %w", err)
			}

			if failed > 0 {
				slog.Warn("some versions failed to parse", "failed", failed, "total", len(versions))
				if cmd.Bool("fail-on-error") {
					return fmt.Errorf("parsing failed: %d of %d version(s) did not parse", failed, len(versions))
				}
			}

			return nil
		},
	}
}
