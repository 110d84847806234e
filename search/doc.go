// Copyright 2025 Poiesic Systems
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


// Package search scores corpus items against queries and orchestrates query
// handling over a fixed fallback ladder.
//
// The Responder type sequences:
//   - canned short-circuits for empty queries and greetings
//   - keyword-index lookup
//   - scored corpus search with a similarity threshold
//   - last-resort generation over general knowledge
//   - a fixed fallback with suggested topics
//
// Matching is purely lexical: token overlap, substring containment, and
// static per-source priors. No tier may raise past the responder boundary.
package search
