// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package composer validates rendered version strings against the PHP
// composer version grammar (https://getcomposer.org/doc/04-schema.md#version).
//
// The checker is applied to the output of the semver renderer to confirm that
// a normalized version is accepted by the composer ecosystem; it is not used
// during parsing.
package composer

import "regexp"

// versionPattern is the composer version grammar: an optional "v" prefix,
// a numeric major.minor.patch triple, and an optional dash-separated suffix
// keyword with an optional number.
//
// Known gap inherited from the upstream grammar: the suffix alternation
// accepts "d" and lets "dev" be followed directly by digits ("1.0.0-dev123"),
// which the parser's suffix vocabulary does not produce. Kept as-is so the
// checker stays aligned with what composer itself accepts.
const versionPattern = `^v?(?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)(-(?P<suffix>dev|d|patch|p|alpha|a|beta|b|RC)(?P<suffixVersion>\d+)?)?$`

// versionRegex holds no mutable state and requires no teardown,
// so it is compiled once at process start.
var versionRegex = regexp.MustCompile(versionPattern)

// Checker validates version strings against the composer version grammar.
// The zero value is not usable; create instances with New.
type Checker struct {
	regex *regexp.Regexp
}

// New creates a Checker backed by the process-wide compiled grammar.
func New() *Checker {
	return &Checker{regex: versionRegex}
}

// IsValid returns true if the version string is accepted by the composer
// version grammar.
func (c *Checker) IsValid(version string) bool {
	return c.regex.MatchString(version)
}
