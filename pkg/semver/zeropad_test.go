package semver

import (
	"errors"
	"testing"
)

func TestParseZeroPadded(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantValue uint64
		wantWidth int
		wantErr   bool
	}{
		{"single digit", "7", 7, 1, false},
		{"leading zeros", "007", 7, 3, false},
		{"zero", "0", 0, 1, false},
		{"padded zero", "00", 0, 2, false},
		{"year", "2023", 2023, 4, false},
		{"non numeric", "beta", 0, 0, true},
		{"negative", "-1", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"mixed", "1a", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := ParseZeroPadded(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseZeroPadded(%q) expected error, got %v", tt.token, z)
				}
				if !errors.Is(err, ErrNonNumericComponent) {
					t.Fatalf("ParseZeroPadded(%q) error = %v, want ErrNonNumericComponent", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseZeroPadded(%q) unexpected error: %v", tt.token, err)
			}
			if z.Value != tt.wantValue || z.Width != tt.wantWidth {
				t.Fatalf("ParseZeroPadded(%q) = {%d %d}, want {%d %d}",
					tt.token, z.Value, z.Width, tt.wantValue, tt.wantWidth)
			}
		})
	}
}

func TestNewZeroPadded(t *testing.T) {
	tests := []struct {
		value     uint64
		wantWidth int
	}{
		{0, 1},
		{7, 1},
		{10, 2},
		{2023, 4},
	}

	for _, tt := range tests {
		z := NewZeroPadded(tt.value)
		if z.Width != tt.wantWidth {
			t.Errorf("NewZeroPadded(%d).Width = %d, want %d", tt.value, z.Width, tt.wantWidth)
		}
	}
}

func TestZeroPaddedString(t *testing.T) {
	tests := []struct {
		name string
		z    ZeroPadded
		want string
	}{
		{"no padding", ZeroPadded{Value: 7, Width: 1}, "7"},
		{"padded", ZeroPadded{Value: 7, Width: 3}, "007"},
		{"exact width", ZeroPadded{Value: 100, Width: 3}, "100"},
		{"value outgrew width", ZeroPadded{Value: 100, Width: 2}, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.z.String(); got != tt.want {
				t.Fatalf("%+v.String() = %q, want %q", tt.z, got, tt.want)
			}
		})
	}
}

func TestZeroPaddedAdd(t *testing.T) {
	z := MustParse("0.0.099").Patch

	got := z.Add(1)
	if got.Value != 100 || got.Width != 3 {
		t.Fatalf("Add(1) = %+v, want {100 3}", got)
	}
	// padding never truncates real digits
	if got.String() != "100" {
		t.Fatalf("Add(1).String() = %q, want %q", got.String(), "100")
	}
	// the receiver is untouched
	if z.Value != 99 || z.Width != 3 {
		t.Fatalf("receiver mutated: %+v", z)
	}
}
