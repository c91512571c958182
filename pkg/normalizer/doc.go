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

// Package normalizer provides the service layer shared by the CLI and the
// HTTP API: it normalizes loosely formatted version strings into canonical
// form, bumps version components, and validates strings against the
// composer version grammar.
//
// The HTTP handlers (HandleParse, HandleBump, HandleValidate) return
// structured JSON error responses via the server package and are intended
// to be registered through server.WithHandler.
package normalizer
