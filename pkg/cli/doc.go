// Package cli implements the command-line interface for the svpctl tool.
//
// # Overview
//
// The svpctl CLI normalizes loosely formatted version strings into canonical
// [prefix]major.minor.patch[-suffix] form, bumps version components while
// preserving zero padding, and validates strings against the composer
// version grammar.
//
// # Commands
//
// parse - Normalize version strings:
//
//	svpctl parse v2023-Nov-0027-v1 [--input FILE] [--format yaml|json|table]
//
// Parses each version and renders its canonical form, reporting composer
// grammar validity per entry. Unparseable entries are reported per-entry;
// use --fail-on-error to make them fail the command.
//
// bump - Increment a version component:
//
//	svpctl bump 1.2.3 --level major|minor|patch
//
// Parses each version, increments the selected component, and renders the
// result. Zero padding of the incremented component is preserved.
//
// check - Validate against the composer grammar:
//
//	svpctl check 1.2.3 [--input FILE] [--fail-on-error]
//
// Checks raw strings against the composer grammar without normalization.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Input Files
//
// The --input flag accepts a file containing a comma-separated list of
// version strings. A leading "list" marker entry and empty entries are
// skipped, matching the historical list format.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure, --fail-on-error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/normalizer - parse, bump, and check operations
//   - pkg/semver - version parsing and rendering
//   - pkg/composer - composer grammar validation
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semver-parser/pkg/cli.version=1.0.0'"
package cli
