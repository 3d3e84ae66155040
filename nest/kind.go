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

// A Kind represents the kind of an open container.
type Kind uint8

const (
	// NoKind is returned by TopKind when the stack is empty; that is, when
	// the stream is at the top level rather than inside any container.
	NoKind Kind = iota

	// MapKind is an open map, a container of alternating keys and values.
	MapKind

	// SeqKind is an open sequence, a container of ordered elements.
	SeqKind
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case NoKind:
		return "<no container>"
	case MapKind:
		return "map"
	case SeqKind:
		return "sequence"
	default:
		return fmt.Sprintf("<unknown kind %v>", uint8(k))
	}
}

// IsContainer determines if the kind is an open container, as opposed to
// the NoKind reported at the top level.
func IsContainer(k Kind) bool {
	return MapKind <= k && k <= SeqKind
}
