// Copyright 2026 Sociolens
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import "errors"

var (
	// ErrNetwork indicates a transport failure reaching the record source.
	// Network failures are retryable.
	ErrNetwork = errors.New("network error")

	// ErrRateLimited indicates the record source refused the request because
	// of request volume. Not retried; callers should back off and try later.
	ErrRateLimited = errors.New("rate limited")

	// ErrParsing indicates the record source returned data that could not
	// be decoded.
	ErrParsing = errors.New("parsing error")

	// ErrInvalidMaxAttempts indicates a retry policy with no attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than zero")
)
