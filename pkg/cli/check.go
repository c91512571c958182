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

// CheckEntry is the per-version output of the check command.
type CheckEntry struct {
	Version string `json:"version" yaml:"version"`
	Valid   bool   `json:"valid" yaml:"valid"`
}

// CheckReport is the serialized output of the check command.
type CheckReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Results []CheckEntry `json:"results" yaml:"results"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate version strings against the composer grammar",
		ArgsUsage:             "[version...]",
		Description: `Check version strings against the composer version grammar as-is,
without normalization. Use the parse command first to turn loosely
formatted versions into canonical form.

# Examples

Check versions given as arguments:
  svpctl check 1.2.3 v10.0.1-RC2

Check versions from a file and fail if any are invalid (useful for CI/CD):
  svpctl check --input versions.txt --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to a file containing a comma-separated list of version strings",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any version fails the grammar check",
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

			entries := make([]CheckEntry, 0, len(versions))
			invalid := 0
			for _, v := range versions {
				valid := n.Check(v)
				if !valid {
					invalid++
				}
				entries = append(entries, CheckEntry{
					Version: v,
					Valid:   valid,
				})
			}

			report := &CheckReport{Results: entries}
			report.Init(header.KindCheckResult, apiVersion, version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return fmt.Errorf("failed to serialize check results: %w", err)
			}

			if invalid > 0 {
				slog.Warn("some versions failed the grammar check", "invalid", invalid, "total", len(versions))
				if cmd.Bool("fail-on-error") {
					return fmt.Errorf("check failed: %d of %d version(s) did not match the grammar", invalid, len(versions))
				}
			}

			return nil
		},
	}
}
