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

// Package header provides the common resource header for serialized results.
//
// The Header type gives CLI output files a consistent Kubernetes-style
// envelope with Kind, APIVersion, and Metadata fields, so results written
// to disk are self-describing and versioned.
//
// # Usage
//
// Embed the Header in a result type and initialize it before serializing:
//
//	type ParseReport struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Results       []ParseEntry `json:"results" yaml:"results"`
//	}
//
//	report := &ParseReport{Results: entries}
//	report.Init(header.KindParseResult, "svp.nvidia.com/v1", version)
package header
