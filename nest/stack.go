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

// state is a frame's position within its container's protocol.
type state uint8

const (
	// stateKey is a map awaiting its next key. It is the initial state of a
	// map frame and the only state a map may close from.
	stateKey state = iota

	// stateValue is a map awaiting the value paired with the last key.
	stateValue

	// stateElem is a sequence awaiting its next element. Sequences have no
	// other state.
	stateElem
)

// String implements fmt.Stringer for state.
func (s state) String() string {
	switch s {
	case stateKey:
		return "expecting a key"
	case stateValue:
		return "expecting a value"
	case stateElem:
		return "expecting an element"
	default:
		return fmt.Sprintf("<unknown state %v>", uint8(s))
	}
}

// A frame records one open container: its kind and its position in the
// key/value protocol. Frames carry no value payload; the stack tracks
// structure, never content.
type frame struct {
	kind  Kind
	state state
}

// defaultMaxDepth is the frame capacity of a zero-config Stack. Most
// streams don't nest deeply, so 16 is a reasonable default.
const defaultMaxDepth = 16

// A Stack tracks the containers currently open in one streaming session and
// validates each structural event against the innermost of them.
//
// The driving encoder or decoder calls the stack once per structural event:
//
//	s := nest.New()
//	s.BeginMap()
//	{
//		s.Key()
//		s.Value()
//		s.Key()
//		s.BeginSeq()
//		{
//			s.Value()
//			s.Value()
//		}
//		s.EndSeq()
//		s.Value()
//	}
//	s.EndMap()
//
// A container opened in a map's value position is paired with its key by an
// explicit Value call after the container closes, as above.
//
// Every method returns a typed error when the event is illegal in the
// current state, and the stack is left exactly as it was before the call.
// Errors do not latch: the caller may correct the event and try again, or
// abort the session and Reset.
//
// Up to the configured depth limit the stack stores frames in a fixed
// inline buffer and never allocates. Past the limit it either grows into
// dynamically allocated storage or fails with a CapacityError, depending on
// configuration and build target; see Config.
//
// A Stack must not be copied after first use, and must not be shared
// between goroutines. Concurrent sessions each take their own Stack.
type Stack struct {
	inline [defaultMaxDepth]frame
	base   []frame // construction-time storage, cap is the depth limit
	frames []frame // live frames; aliases base until growth spills it
	grow   bool
}

// A Config controls the storage strategy of a Stack.
type Config struct {
	// MaxDepth is the number of containers the stack holds without dynamic
	// growth. Zero means the package default of 16. Limits up to the
	// default live in the stack's inline buffer; larger limits are
	// allocated once at construction.
	MaxDepth int

	// NoGrow disables the dynamic fallback: opening a container past
	// MaxDepth fails with a CapacityError instead of spilling to the heap.
	// On targets built without growth support the fallback is disabled
	// regardless.
	NoGrow bool
}

// New returns an empty stack configured by c.
func (c Config) New() *Stack {
	s := &Stack{grow: !c.NoGrow && growSupported}
	limit := c.MaxDepth
	if limit <= 0 {
		limit = defaultMaxDepth
	}
	if limit <= defaultMaxDepth {
		s.base = s.inline[:0:limit]
	} else {
		s.base = make([]frame, 0, limit)
	}
	s.frames = s.base
	return s
}

// New returns an empty stack with the default configuration: a depth limit
// of 16 and, where the target supports it, dynamic growth past that limit.
func New() *Stack {
	return Config{}.New()
}

// init gives a zero-value Stack the default configuration.
func (s *Stack) init() {
	s.base = s.inline[:0:defaultMaxDepth]
	s.frames = s.base
	s.grow = growSupported
}

// top returns the innermost frame, or nil at the top level.
func (s *Stack) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

// push opens a new container, growing storage if needed and permitted.
func (s *Stack) push(api string, f frame) error {
	if s.base == nil {
		s.init()
	}
	if len(s.frames) == cap(s.frames) && !s.grow {
		return &CapacityError{api, cap(s.frames)}
	}
	s.frames = append(s.frames, f)
	return nil
}

// BeginMap opens a map. The new map expects a key first and must be closed
// by a matching EndMap.
func (s *Stack) BeginMap() error {
	return s.push("Stack.BeginMap", frame{MapKind, stateKey})
}

// BeginSeq opens a sequence. The new sequence expects elements and must be
// closed by a matching EndSeq.
func (s *Stack) BeginSeq() error {
	return s.push("Stack.BeginSeq", frame{SeqKind, stateElem})
}

// EndMap closes the innermost container, which must be a map on a key
// boundary: either freshly opened or with its last key/value pair complete.
func (s *Stack) EndMap() error {
	const api = "Stack.EndMap"
	top := s.top()
	if top == nil || top.kind != MapKind {
		return &MismatchError{api, s.TopKind()}
	}
	if top.state == stateValue {
		return &IncompleteMapError{api}
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// EndSeq closes the innermost container, which must be a sequence.
func (s *Stack) EndSeq() error {
	const api = "Stack.EndSeq"
	top := s.top()
	if top == nil || top.kind != SeqKind {
		return &MismatchError{api, s.TopKind()}
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Key records that a map key was emitted. It is legal only when the
// innermost container is a map with no key pending.
func (s *Stack) Key() error {
	const api = "Stack.Key"
	top := s.top()
	switch {
	case top == nil:
		return &UnexpectedKeyError{api, "no open container"}
	case top.kind != MapKind:
		return &UnexpectedKeyError{api, "keys are not allowed in a sequence"}
	case top.state != stateKey:
		return &UnexpectedKeyError{api, "the previous key has no value yet"}
	}
	top.state = stateValue
	return nil
}

// Value records that a plain value was emitted: the value paired with the
// pending key of a map, or the next element of a sequence.
func (s *Stack) Value() error {
	const api = "Stack.Value"
	top := s.top()
	switch {
	case top == nil:
		return &UnexpectedValueError{api, "no open container"}
	case top.kind == SeqKind:
		// Sequences expect elements indefinitely.
		return nil
	case top.state != stateValue:
		return &UnexpectedValueError{api, "the map is expecting a key"}
	}
	top.state = stateKey
	return nil
}

// Depth returns the number of currently open containers. Zero means the
// stream is at the top level; callers enforcing a single top-level value
// check Depth between values.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// TopKind returns the kind of the innermost open container, or NoKind at
// the top level. Encoders consult it to choose delimiters without keeping
// their own nesting state.
func (s *Stack) TopKind() Kind {
	if top := s.top(); top != nil {
		return top.kind
	}
	return NoKind
}

// Reset drops all open frames so the stack can be reused for a new session.
// Storage the stack grew into is released; the inline buffer is retained.
func (s *Stack) Reset() {
	s.frames = s.base
}
