// Copyright 2023 Google LLC
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

package resolve

import (
	"fmt"

	"deps.dev/util/mvnresolve/artifact"

	"github.com/hashicorp/go-multierror"
)

// UnsolvableVersionConflict is raised when no version satisfies the
// intersection of every hard range contributed by a conflict group's
// occurrences.
type UnsolvableVersionConflict struct {
	Group      artifact.Key
	Candidates []string // the distinct resolved versions of the group's occurrences.
}

func (e *UnsolvableVersionConflict) Error() string {
	return fmt.Sprintf("unsolvable version conflict for %s among candidates %v", e.Group, e.Candidates)
}

// ManagementConflict is reserved for future conflicting manager rules; it
// is never raised by this implementation, matching the teacher spec's own
// note that the condition is not currently detected.
type ManagementConflict struct {
	Group artifact.Key
}

func (e *ManagementConflict) Error() string {
	return fmt.Sprintf("management conflict for %s", e.Group)
}

// appendError folds err into agg, creating the aggregate on first use.
// Resolve uses this to keep processing remaining conflict groups after an
// UnsolvableVersionConflict, so every failure is returned together rather
// than only the first.
func appendError(agg *multierror.Error, err error) *multierror.Error {
	return multierror.Append(agg, err)
}
