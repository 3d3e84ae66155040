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
	"fmt"
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// ErrScenario is the sentinel error for all scenario-loading failures.
// It allows error wrapping and consistent error checks using errors.Is().
var ErrScenario = fmt.Errorf("scenario error")

// The operations a scenario step may name.
const (
	OpBeginMap = "begin_map"
	OpBeginSeq = "begin_seq"
	OpEndMap   = "end_map"
	OpEndSeq   = "end_seq"
	OpKey      = "key"
	OpValue    = "value"
	OpReset    = "reset"
)

// Scenario is a scripted sequence of structural operations together with
// the outcome it is expected to produce.
type Scenario struct {
	Name   string  `yaml:"name"`
	Config Config  `yaml:"config,omitempty"`
	Steps  []Step  `yaml:"steps"`
	Want   Outcome `yaml:"want"`
}

// Config selects how the stack driven by a scenario is built.
type Config struct {
	MaxDepth int  `yaml:"max_depth,omitempty"`
	NoGrow   bool `yaml:"no_grow,omitempty"`
}

// Step is a single structural operation. Name and Value are only
// meaningful when the scenario is rendered as a document; the stack
// itself tracks shape, not content.
type Step struct {
	Op    string `yaml:"op"`
	Name  string `yaml:"name,omitempty"`
	Value any    `yaml:"value,omitempty"`
}

// Load decodes a single scenario from a YAML stream.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrScenario, err)
	}

	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("%w: scenario has no steps", ErrScenario)
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpBeginMap, OpBeginSeq, OpEndMap, OpEndSeq, OpKey, OpValue, OpReset:
		default:
			return nil, fmt.Errorf("%w: step %v: unknown op %q", ErrScenario, i+1, step.Op)
		}
	}

	return &s, nil
}

// LoadFile decodes a single scenario from a YAML file. If the scenario
// does not name itself, the file name is used.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScenario, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}
