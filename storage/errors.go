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


package storage

import "errors"

var (
	// ErrUnreadableStore indicates a store file could not be read.
	ErrUnreadableStore = errors.New("store unreadable")

	// ErrMalformedStore indicates a store file holds invalid JSON or an
	// unexpected top-level shape.
	ErrMalformedStore = errors.New("store malformed")

	// ErrWriteFailed indicates a store rewrite did not complete.
	ErrWriteFailed = errors.New("store write failed")
)
