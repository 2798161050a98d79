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

package catalog

import "errors"

var (
	// ErrInvalidMaterial indicates a material without a name or with a non-finite rate.
	ErrInvalidMaterial = errors.New("invalid material")

	// ErrDuplicateName indicates a material with the same name is already listed.
	ErrDuplicateName = errors.New("duplicate material name")

	// ErrDuplicateRate indicates a material with the same mining rate is already
	// listed. Rates are the ranking key, so they must be unique.
	ErrDuplicateRate = errors.New("duplicate mining rate")

	// ErrMaterialNotFound indicates no material has the requested name.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrEmptyCatalog indicates an operation that needs at least one material.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrUnknownFormat indicates a catalog file extension that is neither yaml nor msgpack.
	ErrUnknownFormat = errors.New("unknown catalog format")
)
