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


package core

import "fmt"

// ValidateFailedQueryEntry validates a mined training entry.
//
// Validation rules:
//   - Question must not be empty after normalization
//   - Answer must not be empty
//
// NOT validated:
//   - Category and Tags (optional, may be empty)
func ValidateFailedQueryEntry(entry *FailedQueryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if NormalizeKey(entry.Question) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyQuestion)
	}

	if entry.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyAnswer)
	}

	return nil
}

// ValidateRole validates that a turn role has a known value.
func ValidateRole(role Role) error {
	if role != RoleUser && role != RoleBot {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return nil
}

// ValidateVerdict validates that a feedback verdict has a known value.
func ValidateVerdict(verdict Verdict) error {
	if verdict != VerdictGood && verdict != VerdictBad {
		return fmt.Errorf("%w: %q", ErrInvalidVerdict, verdict)
	}
	return nil
}
