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


// Package corpus normalizes the heterogeneous knowledge sources into a
// uniform list of searchable items.
//
// Each source contributes items with a fixed priority weight. Knowledge
// trees are walked recursively and emit overlapping entries at multiple
// granularities; the redundancy is intentional and raises recall. Building
// is a pure transformation: malformed records degrade to empty fields and
// never fail the build, and items whose derived text or answer is empty are
// dropped.
package corpus
