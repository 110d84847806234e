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


package jsonfile

import (
	"os"
	"path/filepath"
)

// Fixtures maps store file names to raw JSON content for test setup.
type Fixtures map[string]string

// NewFixtureStore writes the given fixtures into dir and opens a store over
// them. Files not listed stay absent, which exercises the optional-store
// paths. Intended for tests; dir is typically t.TempDir().
func NewFixtureStore(dir string, fixtures Fixtures) (*Store, error) {
	for name, content := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return nil, err
		}
	}
	return Open(dir)
}
