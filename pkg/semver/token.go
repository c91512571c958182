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

import "strings"

// isDelimiter reports whether r separates version components.
func isDelimiter(r rune) bool {
	return r == '-' || r == '_' || r == '.'
}

// tokenize splits a raw version string into a flat, ordered sequence of
// lowercase tokens. The input is split on '-', '_', and '.' (delimiters are
// discarded, empty chunks dropped), and any chunk that starts with a
// non-digit run followed by a digit is split once at that boundary, so
// "rc123" yields "rc" and "123" while "rc1beta" yields "rc" and "1beta".
//
// An empty input produces an empty sequence.
func tokenize(s string) []string {
	chunks := strings.FieldsFunc(s, isDelimiter)

	tokens := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		head, tail := splitAlphaAndNumber(chunk)
		tokens = append(tokens, strings.ToLower(head))
		if tail != "" {
			tokens = append(tokens, strings.ToLower(tail))
		}
	}
	return tokens
}

// splitAlphaAndNumber splits a chunk at the first position where a digit
// follows at least one non-digit character. Chunks with no digit, or that
// start with a digit, are returned whole. Only the first boundary is used.
func splitAlphaAndNumber(chunk string) (head, tail string) {
	for i, r := range chunk {
		if r >= '0' && r <= '9' {
			if i == 0 {
				return chunk, ""
			}
			return chunk[:i], chunk[i:]
		}
	}
	return chunk, ""
}
