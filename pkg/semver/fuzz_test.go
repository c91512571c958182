package semver

import (
	"reflect"
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2.3")
	f.Add("v1.2.3")
	f.Add("1.2.3.beta.5")
	f.Add("release-2022-02-09")
	f.Add("2023-Nov-27-v1")
	f.Add("v2023-Nov-0027-v1")
	f.Add("09-28-2023.1")
	f.Add("1.0.0-alpha.0")
	f.Add("2.1.0-beta1")
	f.Add("1.0.0-dev")
	f.Add("v10.0.1-RC2")
	f.Add("2024_06_05")
	f.Add("")
	f.Add("-_.")
	f.Add("v")
	f.Add("release")
	f.Add("1")
	f.Add("1..2")
	f.Add("foo.bar.baz")
	f.Add("1.2.3.4.5")
	f.Add("rc1beta")
	f.Add("1.2.3-foobar")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)
		if err != nil {
			return
		}

		// widths can never be narrower than a single character
		for _, z := range []ZeroPadded{v.Major, v.Minor, v.Patch} {
			if z.Width < 1 {
				t.Errorf("Parse(%q) produced width %d: %+v", input, z.Width, v)
			}
		}

		// the rendered canonical form must re-parse to the same value
		s := v.String()
		v2, err := Parse(s)
		if err != nil {
			t.Errorf("re-parsing %q (from %q) failed: %v", s, input, err)
			return
		}
		if !reflect.DeepEqual(v, v2) {
			t.Errorf("round-trip mismatch for %q: %+v != %+v", input, v, v2)
		}

		// increments leave everything but the named component alone
		inc := v.IncrementPatch()
		if !reflect.DeepEqual(inc.Suffix, v.Suffix) || !reflect.DeepEqual(inc.Prefix, v.Prefix) {
			t.Errorf("IncrementPatch changed suffix or prefix for %q", input)
		}
	})
}
