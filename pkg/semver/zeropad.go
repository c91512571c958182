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
	"fmt"
	"strconv"
)

// ZeroPadded is an unsigned integer coupled to the character width of the text
// it was parsed from. Rendering zero-pads the value back to that width, so a
// component parsed from "0027" reproduces "0027" rather than "27".
//
// ZeroPadded is a pure value type. Add returns a copy; nothing mutates in place.
type ZeroPadded struct {
	Value uint64 `json:"value" yaml:"value"`

	// Width is the number of characters used when the value was parsed.
	// It never truncates: a value whose decimal representation outgrows
	// Width (e.g. "099"+1) renders at its natural width.
	Width int `json:"width" yaml:"width"`
}

// NewZeroPadded creates a ZeroPadded from a raw integer. The width is the
// natural decimal digit count, so the value renders without padding.
func NewZeroPadded(value uint64) ZeroPadded {
	return ZeroPadded{
		Value: value,
		Width: len(strconv.FormatUint(value, 10)),
	}
}

// ParseZeroPadded parses a non-negative decimal token, capturing the token
// length as the display width.
func ParseZeroPadded(token string) (ZeroPadded, error) {
	value, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return ZeroPadded{}, fmt.Errorf("%w: %q", ErrNonNumericComponent, token)
	}
	return ZeroPadded{
		Value: value,
		Width: len(token),
	}, nil
}

// Add returns a copy with the value increased by n. The width is preserved.
func (z ZeroPadded) Add(n uint64) ZeroPadded {
	return ZeroPadded{
		Value: z.Value + n,
		Width: z.Width,
	}
}

// String renders the value zero-padded to its stored width.
func (z ZeroPadded) String() string {
	return fmt.Sprintf("%0*d", z.Width, z.Value)
}
