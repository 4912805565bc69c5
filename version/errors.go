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

package version

import "fmt"

// InvalidVersionSpecification is returned when a version, range, or
// constraint string cannot be parsed under the Generic Version Scheme.
type InvalidVersionSpecification struct {
	Spec    string
	Message string
}

func (e *InvalidVersionSpecification) Error() string {
	return fmt.Sprintf("invalid version specification %q: %s", e.Spec, e.Message)
}

func invalid(spec, format string, args ...any) error {
	return &InvalidVersionSpecification{Spec: spec, Message: fmt.Sprintf(format, args...)}
}
