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

// Prefix is a leading marker that signals version-string style.
// The only recognized value is "v". Input matching is case-insensitive;
// output is always lowercase.
type Prefix string

const (
	// PrefixV is the "v" version prefix, as in "v1.2.3".
	PrefixV Prefix = "v"
)

// String returns the canonical (lowercase) form of the prefix.
func (p Prefix) String() string {
	return string(p)
}

// IsValid returns true if the prefix is a recognized value.
func (p Prefix) IsValid() bool {
	return p == PrefixV
}

// SupportedPrefixes returns all recognized prefix values.
func SupportedPrefixes() []Prefix {
	return []Prefix{PrefixV}
}

// ParsePrefix maps a lowercase token to a prefix marker.
func ParsePrefix(token string) (Prefix, bool) {
	p := Prefix(token)
	return p, p.IsValid()
}

// Suffix is a pre-release or patch-level qualifier keyword, optionally
// followed by a number (e.g. "beta5"). Input matching is case-insensitive;
// the canonical output casing is lowercase for every value except "RC".
type Suffix string

const (
	SuffixDev   Suffix = "dev"
	SuffixPatch Suffix = "patch"
	SuffixP     Suffix = "p"
	SuffixAlpha Suffix = "alpha"
	SuffixA     Suffix = "a"
	SuffixBeta  Suffix = "beta"
	SuffixB     Suffix = "b"
	SuffixRC    Suffix = "RC"

	// DefaultSuffix is applied when a trailing number is present without
	// an explicit keyword, as in "2023-11-29-v1".
	DefaultSuffix = SuffixP
)

// suffixes maps the lowercase token form to the canonical suffix value.
// An explicit table rather than anything reflection-derived; it is
// materialized once and never mutated.
var suffixes = map[string]Suffix{
	"dev":   SuffixDev,
	"patch": SuffixPatch,
	"p":     SuffixP,
	"alpha": SuffixAlpha,
	"a":     SuffixA,
	"beta":  SuffixBeta,
	"b":     SuffixB,
	"rc":    SuffixRC,
}

// String returns the canonical output casing of the suffix.
func (s Suffix) String() string {
	return string(s)
}

// IsValid returns true if the suffix is a recognized canonical value.
func (s Suffix) IsValid() bool {
	switch s {
	case SuffixDev, SuffixPatch, SuffixP, SuffixAlpha, SuffixA, SuffixBeta, SuffixB, SuffixRC:
		return true
	default:
		return false
	}
}

// SupportedSuffixes returns all recognized suffix values in canonical form.
func SupportedSuffixes() []Suffix {
	return []Suffix{SuffixDev, SuffixPatch, SuffixP, SuffixAlpha, SuffixA, SuffixBeta, SuffixB, SuffixRC}
}

// ParseSuffix maps a lowercase token to a suffix marker.
func ParseSuffix(token string) (Suffix, bool) {
	s, ok := suffixes[token]
	return s, ok
}

// months maps lowercase English month names, full and three-letter, to
// their 1-based month-of-year number. Used to support date-style versions
// like "2023-Nov-27".
var months = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// parseMonth maps a lowercase token to its month number (1-12).
func parseMonth(token string) (int, bool) {
	m, ok := months[token]
	return m, ok
}
