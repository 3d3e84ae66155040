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

import (
	"math/rand"
	"testing"
	"testing/quick"
)

// Every well-formed event tree is accepted in full and returns the stack to
// the top level.
func TestQuickBalancedTrees(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}

	err := quick.Check(func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		s := New()

		var err error
		if rng.Intn(2) == 0 {
			err = emitMapTree(s, rng, 0)
		} else {
			err = emitSeqTree(s, rng, 0)
		}
		return err == nil && s.Depth() == 0 && s.TopKind() == NoKind
	}, cfg)
	if err != nil {
		t.Error(err)
	}
}

// A rejected event never changes the stack: depth, top kind, and the top
// frame's protocol position all survive arbitrary misuse.
func TestQuickRejectionPreservesState(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}

	err := quick.Check(func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		s := Config{MaxDepth: 4, NoGrow: rng.Intn(2) == 0}.New()

		for i := 0; i < 64; i++ {
			depth, kind := s.Depth(), s.TopKind()
			var st state
			if f := s.top(); f != nil {
				st = f.state
			}

			var err error
			switch rng.Intn(6) {
			case 0:
				err = s.BeginMap()
			case 1:
				err = s.BeginSeq()
			case 2:
				err = s.EndMap()
			case 3:
				err = s.EndSeq()
			case 4:
				err = s.Key()
			case 5:
				err = s.Value()
			}
			if err == nil {
				continue
			}

			if s.Depth() != depth || s.TopKind() != kind {
				return false
			}
			if f := s.top(); f != nil && f.state != st {
				return false
			}
		}
		return true
	}, cfg)
	if err != nil {
		t.Error(err)
	}
}

// emitTree emits one value: a scalar, or a nested container half the time.
func emitTree(s *Stack, rng *rand.Rand, depth int) error {
	if depth >= 6 || rng.Intn(2) == 0 {
		return s.Value()
	}

	var err error
	if rng.Intn(2) == 0 {
		err = emitMapTree(s, rng, depth)
	} else {
		err = emitSeqTree(s, rng, depth)
	}
	if err != nil {
		return err
	}

	if s.TopKind() == MapKind {
		// A container in a value slot is paired with its key once closed.
		return s.Value()
	}
	return nil
}

func emitMapTree(s *Stack, rng *rand.Rand, depth int) error {
	if err := s.BeginMap(); err != nil {
		return err
	}
	for i := rng.Intn(4); i > 0; i-- {
		if err := s.Key(); err != nil {
			return err
		}
		if err := emitTree(s, rng, depth+1); err != nil {
			return err
		}
	}
	return s.EndMap()
}

func emitSeqTree(s *Stack, rng *rand.Rand, depth int) error {
	if err := s.BeginSeq(); err != nil {
		return err
	}
	for i := rng.Intn(4); i > 0; i-- {
		if err := emitTree(s, rng, depth+1); err != nil {
			return err
		}
	}
	return s.EndSeq()
}
