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

package header

import (
	"testing"
	"time"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindParseResult, true},
		{KindBumpResult, true},
		{KindCheckResult, true},
		{Kind("Unknown"), false},
		{Kind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("Kind(%q).IsValid() = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindParseResult),
		WithAPIVersion("svp.nvidia.com/v1"),
		WithMetadata("source", "test"),
	)

	if h.Kind != KindParseResult {
		t.Errorf("Kind = %q, want %q", h.Kind, KindParseResult)
	}
	if h.APIVersion != "svp.nvidia.com/v1" {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, "svp.nvidia.com/v1")
	}
	if h.Metadata["source"] != "test" {
		t.Errorf("Metadata[source] = %q, want %q", h.Metadata["source"], "test")
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindCheckResult, "svp.nvidia.com/v1", "1.2.3")

	if h.Kind != KindCheckResult {
		t.Errorf("Kind = %q, want %q", h.Kind, KindCheckResult)
	}
	if h.Metadata["version"] != "1.2.3" {
		t.Errorf("Metadata[version] = %q, want %q", h.Metadata["version"], "1.2.3")
	}

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("timestamp too old: %v", ts)
	}
}

func TestInitWithoutVersion(t *testing.T) {
	var h Header
	h.Init(KindBumpResult, "svp.nvidia.com/v1", "")

	if _, ok := h.Metadata["version"]; ok {
		t.Error("expected no version metadata when version is empty")
	}
}
