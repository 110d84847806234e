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


// Package storage defines the contracts for the persisted knowledge stores.
//
// Every store is a keyed, human-diffable, whole-file read/rewrite document;
// there are no partial updates and no streaming. The structured records are
// read-only inputs to the retrieval core, the learned-answers store grows
// at request time, and the failed-query training set is written only by the
// offline miner.
package storage
