/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// readVersionList reads a comma-separated list of version strings from path.
// The historical list format allows a leading "list" marker entry, which is
// skipped along with empty entries.
func readVersionList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read version list from %q: %w", path, err)
	}

	var versions []string
	for _, entry := range strings.Split(string(data), ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" || entry == "list" {
			continue
		}
		versions = append(versions, entry)
	}

	return versions, nil
}

// collectVersions gathers version strings from positional args and the
// optional --input file.
func collectVersions(cmd *cli.Command) ([]string, error) {
	versions := cmd.Args().Slice()

	if path := cmd.String("input"); path != "" {
		fromFile, err := readVersionList(path)
		if err != nil {
			return nil, err
		}
		versions = append(versions, fromFile...)
	}

	if len(versions) == 0 {
		return nil, fmt.Errorf("no version strings given: pass them as arguments or via --input")
	}

	return versions, nil
}
