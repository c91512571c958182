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

package normalizer

import (
	"fmt"

	"github.com/NVIDIA/semver-parser/pkg/composer"
	"github.com/NVIDIA/semver-parser/pkg/semver"
)

// Level identifies which version component a bump operation increments.
type Level string

const (
	LevelMajor Level = "major"
	LevelMinor Level = "minor"
	LevelPatch Level = "patch"
)

// ParseLevel validates and normalizes a bump level string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelMajor, LevelMinor, LevelPatch:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid bump level: %q (supported: %v)", s, SupportedLevels())
	}
}

// SupportedLevels returns all valid bump levels.
func SupportedLevels() []Level {
	return []Level{LevelMajor, LevelMinor, LevelPatch}
}

// Result describes the outcome of normalizing a single version string.
type Result struct {
	Input      string        `json:"input" yaml:"input"`
	Normalized string        `json:"normalized" yaml:"normalized"`
	Parsed     semver.SemVer `json:"parsed" yaml:"parsed"`
	Valid      bool          `json:"valid" yaml:"valid"`
}

// Normalizer turns loosely formatted version strings into canonical form
// and reports whether the canonical form satisfies the composer grammar.
type Normalizer struct {
	checker *composer.Checker
}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{
		checker: composer.New(),
	}
}

// Normalize parses input and renders its canonical form.
func (n *Normalizer) Normalize(input string) (*Result, error) {
	v, err := semver.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("normalizing %q: %w", input, err)
	}

	rendered := v.String()
	return &Result{
		Input:      input,
		Normalized: rendered,
		Parsed:     v,
		Valid:      n.checker.IsValid(rendered),
	}, nil
}

// Bump parses input, increments the component named by level, and renders
// the result. Zero padding of the incremented component is preserved.
func (n *Normalizer) Bump(input string, level Level) (*Result, error) {
	v, err := semver.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("bumping %q: %w", input, err)
	}

	switch level {
	case LevelMajor:
		v = v.IncrementMajor()
	case LevelMinor:
		v = v.IncrementMinor()
	case LevelPatch:
		v = v.IncrementPatch()
	default:
		return nil, fmt.Errorf("invalid bump level: %q (supported: %v)", level, SupportedLevels())
	}

	rendered := v.String()
	return &Result{
		Input:      input,
		Normalized: rendered,
		Parsed:     v,
		Valid:      n.checker.IsValid(rendered),
	}, nil
}

// Check reports whether the given version string satisfies the composer
// grammar as-is, without normalization.
func (n *Normalizer) Check(version string) bool {
	return n.checker.IsValid(version)
}
