// Copyright 2026 Sociolens
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

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - Id must not be empty (use IDFromContent for sources without IDs)
//   - Text must not be empty
//   - CreatedAt must start with a four-digit year
//
// NOT validated:
//   - Lang (optional; many corpora carry no language tagging)
//   - Metrics (absent counters are zero)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyID)
	}

	if record.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyText)
	}

	if year, err := record.Year(); err != nil || year < 1000 || year > 9999 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrInvalidCreatedAt)
	}

	return nil
}
