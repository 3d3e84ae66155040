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

package script

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/nestio/nest-go/nest"
)

// Outcome is the observable result of running a scenario: the first
// rejected step (if any) and the final stack state. Top is one of
// "map", "seq" and "none".
type Outcome struct {
	Error string `yaml:"error,omitempty"`
	Step  int    `yaml:"step,omitempty"`
	Depth int    `yaml:"depth,omitempty"`
	Top   string `yaml:"top,omitempty"`
}

// Run drives the scenario's steps against a fresh stack. It stops at the
// first rejected operation; a rejection leaves the stack untouched, so
// Depth and Top describe the state just before the failing step.
func (s *Scenario) Run() Outcome {
	stack := nest.Config{MaxDepth: s.Config.MaxDepth, NoGrow: s.Config.NoGrow}.New()

	var out Outcome
	for i, step := range s.Steps {
		var err error
		switch step.Op {
		case OpBeginMap:
			err = stack.BeginMap()
		case OpBeginSeq:
			err = stack.BeginSeq()
		case OpEndMap:
			err = stack.EndMap()
		case OpEndSeq:
			err = stack.EndSeq()
		case OpKey:
			err = stack.Key()
		case OpValue:
			err = stack.Value()
		case OpReset:
			stack.Reset()
		}
		if err != nil {
			out.Error = errorToken(err)
			out.Step = i + 1
			break
		}
	}

	out.Depth = stack.Depth()
	out.Top = kindToken(stack.TopKind())
	return out
}

// Check runs the scenario and compares the outcome against Want.
func (s *Scenario) Check() error {
	want := s.Want
	if want.Top == "" {
		want.Top = "none"
	}

	if diff := cmp.Diff(want, s.Run()); diff != "" {
		return fmt.Errorf("%w: %v: outcome mismatch (-want +got):\n%v", ErrScenario, s.Name, diff)
	}
	return nil
}

func errorToken(err error) string {
	var (
		capacity   *nest.CapacityError
		mismatch   *nest.MismatchError
		incomplete *nest.IncompleteMapError
		key        *nest.UnexpectedKeyError
		value      *nest.UnexpectedValueError
	)
	switch {
	case errors.As(err, &capacity):
		return "capacity"
	case errors.As(err, &mismatch):
		return "mismatch"
	case errors.As(err, &incomplete):
		return "incomplete_map"
	case errors.As(err, &key):
		return "unexpected_key"
	case errors.As(err, &value):
		return "unexpected_value"
	}
	return err.Error()
}

func kindToken(k nest.Kind) string {
	switch k {
	case nest.MapKind:
		return "map"
	case nest.SeqKind:
		return "seq"
	}
	return "none"
}
