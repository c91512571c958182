// Package semver parses loosely-structured version-like strings into a
// normalized structured value and renders that value back to a canonical,
// width-preserving textual form.
//
// # Overview
//
// Inputs are not required to be well-formed semantic versions. The parser
// accepts release tags, dates, and semantic-version-ish identifiers:
//
//   - "1.2.3.beta.5"
//   - "v1.2.3"
//   - "release-2022-02-09"
//   - "2023-Nov-27-v1"
//   - "v2.0.4-p1"
//
// The input is tokenized on '-', '_', and '.', mixed alpha/digit tokens are
// split ("rc123" -> "rc", "123"), and the token sequence is classified left
// to right into an optional prefix, three numeric components, and an optional
// suffix pair. See Parse for the exact stage order.
//
// # Width Preservation
//
// Numeric components remember the character width of their source text, so a
// version parsed from "v2023-Nov-0027-v1" renders as "v2023.11.0027-p1" with
// the leading zeros intact, including across increments:
//
//	v, _ := semver.Parse("v2023-Nov-0027-v1")
//	fmt.Println(v.IncrementPatch()) // Output: v2023.11.0028-p1
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3.beta.5")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-beta5
//
// Increment components (pure, the receiver is never modified):
//
//	fmt.Println(v.IncrementMajor().String()) // Output: 2.2.3-beta5
//
// # Not Supported
//
//   - Build metadata (e.g., "1.2.3+build.123")
//   - Version ordering, ranges, or constraints
//   - General-purpose date parsing beyond the year-month-day layouts above
//
// # Error Handling
//
// Parse returns sentinel errors for the distinct failure modes:
//
//   - ErrEmptyVersion: no tokens after tokenization
//   - ErrTooFewComponents: fewer than 2 numeric components
//   - ErrNonNumericComponent: a numeric component failed to parse
//   - ErrMalformedSuffix: the trailing suffix number failed to parse
//
// For constant initialization and tests, MustParse panics on error.
//
// The package holds no mutable state: vocabulary tables are constant and
// parsing is a pure function, so concurrent use needs no coordination.
package semver
