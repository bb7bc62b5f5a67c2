// Copyright 2025 Naren Yellavula
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

package bimap

import "errors"

var (
	// ErrIteratorExhausted is returned when an iterator is advanced past
	// either end of its axis.
	ErrIteratorExhausted = errors.New("bimap: iterator exhausted")

	// ErrIllegalRemove is returned by Iterator.Remove when the iterator is
	// not positioned on an entry returned by Next, Prev or Seek, or that entry
	// was already removed.
	ErrIllegalRemove = errors.New("bimap: remove without a current entry")

	// ErrCorrupted wraps every failure reported by CheckInvariant.
	ErrCorrupted = errors.New("bimap: invariant violated")
)
