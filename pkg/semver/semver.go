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

package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion        = errors.New("version string is empty")
	ErrTooFewComponents    = errors.New("version has fewer than 2 numeric components")
	ErrNonNumericComponent = errors.New("version component is not a non-negative number")
	ErrMalformedSuffix     = errors.New("suffix number is not a number")
)

// SuffixPair is a suffix keyword with an optional trailing number.
// A nil Number renders as the bare keyword ("dev", not "dev0").
type SuffixPair struct {
	Suffix Suffix `json:"suffix" yaml:"suffix"`
	Number *int   `json:"number,omitempty" yaml:"number,omitempty"`
}

// SemVer is the structured form of a parsed version-like string: an optional
// prefix, three width-preserving numeric components, and an optional suffix
// pair. It is a pure value; the increment methods return a new value and
// never modify the receiver.
type SemVer struct {
	Prefix *Prefix     `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Major  ZeroPadded  `json:"major" yaml:"major"`
	Minor  ZeroPadded  `json:"minor" yaml:"minor"`
	Patch  ZeroPadded  `json:"patch" yaml:"patch"`
	Suffix *SuffixPair `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Parse converts a loosely-structured version string (release tag, date,
// semantic-version-ish identifier) into a SemVer.
//
// The token sequence produced by tokenize is classified left to right in a
// fixed stage order; each stage's decision is final, so inputs that could be
// read multiple ways are resolved by position, not backtracking:
//
//  1. A leading "v" becomes the prefix; a leading "release" is discarded.
//  2. A month name in the second position is replaced by its number,
//     supporting date-style versions like "release-2022-Feb-09".
//  3. Two numeric components get a synthetic ".0" patch; fewer is an error.
//  4. A fourth token matching the suffix vocabulary becomes the suffix
//     keyword; a literal "v" there (as in "2023-11-29-v1") is discarded.
//  5. A remaining fourth token must be the suffix number; the keyword
//     defaults to "p" when only a number was supplied.
//  6. The first three tokens are parsed as width-preserving integers.
//
// Tokens beyond the consumed ones are ignored.
func Parse(s string) (SemVer, error) {
	tokens := tokenize(s)
	if len(tokens) == 0 {
		return SemVer{}, ErrEmptyVersion
	}

	var v SemVer
	pos := 0

	// Prefix, or the non-semantic "release" marker.
	if p, ok := ParsePrefix(tokens[0]); ok {
		v.Prefix = &p
		pos = 1
	} else if tokens[0] == "release" {
		pos = 1
	}

	// Month substitution, checked only in the second position (the
	// conventional year-month-day layout). The substituted token gets the
	// month number's natural width, not the name's.
	if pos+1 < len(tokens) {
		if m, ok := parseMonth(tokens[pos+1]); ok {
			tokens[pos+1] = strconv.Itoa(m)
		}
	}

	rest := tokens[pos:]
	switch {
	case len(rest) < 2:
		return SemVer{}, fmt.Errorf("%w: got %d", ErrTooFewComponents, len(rest))
	case len(rest) == 2:
		rest = append(rest[:2:2], "0")
	}

	// Suffix keyword at the fourth remaining token.
	var marker *Suffix
	next := 3 // index of the suffix-number candidate
	if len(rest) >= 4 {
		if sfx, ok := ParseSuffix(rest[3]); ok {
			marker = &sfx
			next = 4
		} else if rest[3] == "v" {
			// trailing revision marker, as in "2023-11-29-v1"
			next = 4
		}
	}

	// Suffix number, if a fourth token is still unconsumed.
	var number *int
	removed := next - 3
	if len(rest)-removed >= 4 {
		n, err := strconv.Atoi(rest[next])
		if err != nil {
			return SemVer{}, fmt.Errorf("%w: %q", ErrMalformedSuffix, rest[next])
		}
		number = &n
		if marker == nil {
			d := DefaultSuffix
			marker = &d
		}
	}
	if marker != nil {
		v.Suffix = &SuffixPair{Suffix: *marker, Number: number}
	}

	var err error
	if v.Major, err = ParseZeroPadded(rest[0]); err != nil {
		return SemVer{}, err
	}
	if v.Minor, err = ParseZeroPadded(rest[1]); err != nil {
		return SemVer{}, err
	}
	if v.Patch, err = ParseZeroPadded(rest[2]); err != nil {
		return SemVer{}, err
	}

	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) SemVer {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// String renders the canonical form: [prefix]major.minor.patch[-suffix].
// Numeric components are zero-padded to their stored widths, and the suffix
// number follows its keyword with no separator ("beta5").
// Rendering is deterministic and total for any valid SemVer.
func (v SemVer) String() string {
	var b strings.Builder
	if v.Prefix != nil {
		b.WriteString(v.Prefix.String())
	}
	b.WriteString(v.Major.String())
	b.WriteByte('.')
	b.WriteString(v.Minor.String())
	b.WriteByte('.')
	b.WriteString(v.Patch.String())
	if v.Suffix != nil {
		b.WriteByte('-')
		b.WriteString(v.Suffix.Suffix.String())
		if v.Suffix.Number != nil {
			b.WriteString(strconv.Itoa(*v.Suffix.Number))
		}
	}
	return b.String()
}

// IncrementMajor returns a new SemVer with the major component increased by
// one. All other fields, including the suffix pair and preserved widths, are
// carried over unchanged.
func (v SemVer) IncrementMajor() SemVer {
	v.Major = v.Major.Add(1)
	return v
}

// IncrementMinor returns a new SemVer with the minor component increased by one.
func (v SemVer) IncrementMinor() SemVer {
	v.Minor = v.Minor.Add(1)
	return v
}

// IncrementPatch returns a new SemVer with the patch component increased by one.
func (v SemVer) IncrementPatch() SemVer {
	v.Patch = v.Patch.Add(1)
	return v
}
