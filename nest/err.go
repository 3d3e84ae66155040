/*
 * Copyright the nest-go authors. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package nest

import "fmt"

// A CapacityError is returned when opening a container would exceed the
// stack's depth limit and no growable storage is available.
type CapacityError struct {
	API   string
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("nest: capacity exceeded in %v: depth limit is %v", e.API, e.Limit)
}

// A MismatchError is returned when EndMap or EndSeq does not match the kind
// of the innermost open container, or is called at the top level. Top holds
// the kind actually open at the time of the call, or NoKind for the top level.
type MismatchError struct {
	API string
	Top Kind
}

func (e *MismatchError) Error() string {
	if e.Top == NoKind {
		return fmt.Sprintf("nest: structure mismatch in %v: no open container", e.API)
	}
	return fmt.Sprintf("nest: structure mismatch in %v: the open container is a %v", e.API, e.Top)
}

// An IncompleteMapError is returned when EndMap is called while the map's
// most recent key is still waiting for its paired value. A map may only
// close on a key boundary.
type IncompleteMapError struct {
	API string
}

func (e *IncompleteMapError) Error() string {
	return fmt.Sprintf("nest: incomplete map in %v: a key has no paired value", e.API)
}

// An UnexpectedKeyError is returned when Key is called and the innermost
// container is not a map awaiting a key.
type UnexpectedKeyError struct {
	API string
	Msg string
}

func (e *UnexpectedKeyError) Error() string {
	return fmt.Sprintf("nest: unexpected key in %v: %v", e.API, e.Msg)
}

// An UnexpectedValueError is returned when Value is called and the innermost
// container is neither a map awaiting a value nor a sequence.
type UnexpectedValueError struct {
	API string
	Msg string
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("nest: unexpected value in %v: %v", e.API, e.Msg)
}
