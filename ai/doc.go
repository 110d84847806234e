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


// Package ai defines the collaborator contracts for generative services:
// answer rewriting from a canned context and follow-up question suggestion.
//
// The retrieval core never produces prose itself; it selects and scores
// canned answers and hands the winning context to these services. Every
// call is best-effort from the orchestrator's point of view: failures are
// caught at the call site and degrade to the next fallback tier.
package ai
