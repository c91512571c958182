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

// BumpReport is the serialized output of the bump command.
type BumpReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Level   normalizer.Level     `json:"level" yaml:"level"`
	Results []*normalizer.Result `json:"results" yaml:"results"`
}

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increment a component of version strings",
		ArgsUsage:             "[version...]",
		Description: `Parse version strings, increment the selected component, and render the
result in canonical form. Only the selected component changes; the others
keep their values, and zero padding is preserved.

# Examples

Bump the patch component (default):
  svpctl bump 1.2.3

Bump the major component of a padded date version:
  svpctl bump --level major v2023-Nov-0027-v1

Bump versions from a file:
  svpctl bump --input versions.txt --level minor --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   string(normalizer.LevelPatch),
				Usage: fmt.Sprintf("Version component to increment (supported values: %v)",
					normalizer.SupportedLevels()),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to a file containing a comma-separated list of version strings",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			level, err := normalizer.ParseLevel(cmd.String("level"))
			if err != nil {
				return err
			}

			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}

			n := normalizer.New()

			results := make([]*normalizer.Result, 0, len(versions))
			for _, v := range versions {
				result, err := n.Bump(v, level)
				if err != nil {
					return fmt.Errorf("error bumping %s version: %w", level, err)
				}
				results = append(results, result)
			}

			report := &BumpReport{Level: level, Results: results}
			report.Init(header.KindBumpResult, apiVersion, version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize bump results: %w", err)
			}

			return nil
		},
	}
}
