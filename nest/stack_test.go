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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestEmptyStack(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, NoKind, s.TopKind())

	var me *MismatchError
	require.ErrorAs(t, s.EndMap(), &me)
	assert.Equal(t, NoKind, me.Top)
	require.ErrorAs(t, s.EndSeq(), &me)
	assert.Equal(t, NoKind, me.Top)

	var ke *UnexpectedKeyError
	require.ErrorAs(t, s.Key(), &ke)

	var ve *UnexpectedValueError
	require.ErrorAs(t, s.Value(), &ve)

	assert.Equal(t, 0, s.Depth())
}

func TestBalancedTree(t *testing.T) {
	s := New()

	require.NoError(t, s.BeginMap())
	{
		require.NoError(t, s.Key())
		require.NoError(t, s.Value())

		require.NoError(t, s.Key())
		require.NoError(t, s.BeginSeq())
		{
			require.NoError(t, s.Value())

			require.NoError(t, s.BeginMap())
			require.NoError(t, s.EndMap())

			require.NoError(t, s.Value())
		}
		require.NoError(t, s.EndSeq())
		require.NoError(t, s.Value())
	}
	require.NoError(t, s.EndMap())

	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, NoKind, s.TopKind())
}

func TestMapAlternation(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginMap())

	// Two values in a row: the second has no key.
	require.NoError(t, s.Key())
	require.NoError(t, s.Value())
	var ve *UnexpectedValueError
	require.ErrorAs(t, s.Value(), &ve)

	// Two keys in a row: the first has no value.
	require.NoError(t, s.Key())
	var ke *UnexpectedKeyError
	require.ErrorAs(t, s.Key(), &ke)

	require.NoError(t, s.Value())
	require.NoError(t, s.EndMap())
	assert.Equal(t, 0, s.Depth())
}

func TestEmptyMapCloses(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginMap())
	require.NoError(t, s.EndMap())
	assert.Equal(t, 0, s.Depth())
}

func TestUnpairedKey(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginMap())
	require.NoError(t, s.Key())

	var ie *IncompleteMapError
	require.ErrorAs(t, s.EndMap(), &ie)

	// The rejected close left the pending key in place.
	require.NoError(t, s.Value())
	require.NoError(t, s.EndMap())
}

func TestEndMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginMap())

	var me *MismatchError
	require.ErrorAs(t, s.EndSeq(), &me)
	assert.Equal(t, MapKind, me.Top)

	require.NoError(t, s.Key())
	require.NoError(t, s.BeginSeq())
	require.ErrorAs(t, s.EndMap(), &me)
	assert.Equal(t, SeqKind, me.Top)

	require.NoError(t, s.EndSeq())
	require.NoError(t, s.Value())
	require.NoError(t, s.EndMap())
}

func TestCapacity(t *testing.T) {
	s := Config{MaxDepth: 4, NoGrow: true}.New()

	for i := 0; i < 4; i++ {
		require.NoError(t, s.BeginSeq())
	}

	var ce *CapacityError
	require.ErrorAs(t, s.BeginSeq(), &ce)
	assert.Equal(t, 4, ce.Limit)
	require.ErrorAs(t, s.BeginMap(), &ce)
	assert.Equal(t, 4, s.Depth())

	// The stack is still usable at the limit.
	require.NoError(t, s.Value())
	for i := 0; i < 4; i++ {
		require.NoError(t, s.EndSeq())
	}
	assert.Equal(t, 0, s.Depth())
}

func TestCapacityGrows(t *testing.T) {
	if !growSupported {
		t.Skip("growth disabled on this target")
	}

	s := Config{MaxDepth: 4}.New()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.BeginSeq())
	}
	assert.Equal(t, 10, s.Depth())
	assert.Equal(t, SeqKind, s.TopKind())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.EndSeq())
	}
	assert.Equal(t, 0, s.Depth())
}

func TestConfiguredDepthBeyondInline(t *testing.T) {
	s := Config{MaxDepth: 64, NoGrow: true}.New()

	for i := 0; i < 64; i++ {
		require.NoError(t, s.BeginSeq())
	}

	var ce *CapacityError
	require.ErrorAs(t, s.BeginSeq(), &ce)
	assert.Equal(t, 64, ce.Limit)

	for i := 0; i < 64; i++ {
		require.NoError(t, s.EndSeq())
	}
	assert.Equal(t, 0, s.Depth())
}

func TestReset(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginMap())
	require.NoError(t, s.Key())
	require.NoError(t, s.BeginSeq())

	s.Reset()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, NoKind, s.TopKind())

	// A fresh session sees no residue from the aborted one.
	require.NoError(t, runSession(s))
}

func TestResetReleasesGrownStorage(t *testing.T) {
	if !growSupported {
		t.Skip("growth disabled on this target")
	}

	s := Config{MaxDepth: 2}.New()
	for i := 0; i < 6; i++ {
		require.NoError(t, s.BeginSeq())
	}
	require.Greater(t, cap(s.frames), 2)

	s.Reset()
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, 2, cap(s.frames))

	require.NoError(t, s.BeginMap())
	require.NoError(t, s.EndMap())
}

func TestStreamScenario(t *testing.T) {
	s := New()

	require.NoError(t, s.BeginMap())
	require.NoError(t, s.Key())
	require.NoError(t, s.BeginSeq())
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, SeqKind, s.TopKind())

	require.NoError(t, s.Value())
	require.NoError(t, s.Value())
	require.NoError(t, s.EndSeq())
	require.NoError(t, s.Value())
	require.NoError(t, s.EndMap())

	assert.Equal(t, 0, s.Depth())
}

func TestRejectedCallLeavesStateUnchanged(t *testing.T) {
	s := New()
	require.NoError(t, s.BeginMap())

	var ve *UnexpectedValueError
	require.ErrorAs(t, s.Value(), &ve)

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, MapKind, s.TopKind())

	// The same logical position accepts a corrected event.
	require.NoError(t, s.Key())
	require.NoError(t, s.Value())
	require.NoError(t, s.EndMap())
}

func TestZeroValue(t *testing.T) {
	var s Stack
	require.NoError(t, s.BeginMap())
	require.NoError(t, s.EndMap())
	assert.Equal(t, 0, s.Depth())
}

func TestIndependentSessions(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			s := New()
			for j := 0; j < 1000; j++ {
				if err := runSession(s); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// runSession drives one balanced map/sequence session to completion.
func runSession(s *Stack) error {
	steps := []func() error{
		s.BeginMap,
		s.Key,
		s.BeginSeq,
		s.Value,
		s.Value,
		s.EndSeq,
		s.Value,
		s.EndMap,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	if d := s.Depth(); d != 0 {
		return fmt.Errorf("depth %v after a balanced session", d)
	}
	return nil
}

func BenchmarkSession(b *testing.B) {
	s := New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := runSession(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeepNesting(b *testing.B) {
	s := Config{MaxDepth: 64}.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 64; j++ {
			s.BeginSeq()
		}
		for j := 0; j < 64; j++ {
			s.EndSeq()
		}
	}
}
